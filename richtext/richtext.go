// Package richtext renders the CMS structured-text schema to HTML.
//
// A rich-text body is an ordered slice of blocks. Each block carries its
// plain text plus a list of spans (bold, italic, hyperlink) addressing
// rune offsets into that text. The package only ever reads the schema:
// it converts blocks to markup and extracts plain text for excerpts and
// word counting, it never reinterprets or mutates the node shape.
package richtext

import (
	"bytes"
	"html"
	"net/url"
	"sort"
	"strings"
)

// Block is one node of the rich-text body.
type Block struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Spans []Span `json:"spans,omitempty"`
	URL   string `json:"url,omitempty"` // image blocks
	Alt   string `json:"alt,omitempty"`
}

// Span marks an inline formatting range. Start and End are rune offsets
// into the owning block's Text.
type Span struct {
	Start int       `json:"start"`
	End   int       `json:"end"`
	Type  string    `json:"type"`
	Data  *SpanData `json:"data,omitempty"`
}

// SpanData carries extra attributes for hyperlink spans.
type SpanData struct {
	URL    string `json:"url"`
	Target string `json:"target,omitempty"`
}

// AsHTML renders a rich-text body to an HTML fragment. List items are
// grouped into a single <ul> or <ol>; unknown block types fall back to
// paragraphs so new CMS node types degrade instead of disappearing.
func AsHTML(blocks []Block) string {
	var buf bytes.Buffer
	list := "" // open list element, "" when none

	closeList := func() {
		if list != "" {
			buf.WriteString("</" + list + ">")
			list = ""
		}
	}
	openList := func(tag string) {
		if list != tag {
			closeList()
			buf.WriteString("<" + tag + ">")
			list = tag
		}
	}

	for _, b := range blocks {
		switch b.Type {
		case "heading1":
			closeList()
			buf.WriteString("<h1>" + renderSpans(b.Text, b.Spans) + "</h1>")
		case "heading2":
			closeList()
			buf.WriteString("<h2>" + renderSpans(b.Text, b.Spans) + "</h2>")
		case "heading3":
			closeList()
			buf.WriteString("<h3>" + renderSpans(b.Text, b.Spans) + "</h3>")
		case "list-item":
			openList("ul")
			buf.WriteString("<li>" + renderSpans(b.Text, b.Spans) + "</li>")
		case "o-list-item":
			openList("ol")
			buf.WriteString("<li>" + renderSpans(b.Text, b.Spans) + "</li>")
		case "image":
			closeList()
			src := safeURL(b.URL)
			if src != "" {
				buf.WriteString(`<img src="` + src + `" alt="` + html.EscapeString(b.Alt) + `" loading="lazy"/>`)
			}
		case "preformatted":
			closeList()
			buf.WriteString("<pre><code>" + html.EscapeString(b.Text) + "</code></pre>")
		default: // paragraph and anything unrecognized
			closeList()
			buf.WriteString("<p>" + renderSpans(b.Text, b.Spans) + "</p>")
		}
	}
	closeList()
	return buf.String()
}

// AsText returns the plain text of a body, blocks joined by single spaces.
func AsText(blocks []Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if t := strings.TrimSpace(b.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// Words counts whitespace-delimited words across all blocks. Splitting is
// whitespace-run based, not locale-aware tokenization.
func Words(blocks []Block) int {
	n := 0
	for _, b := range blocks {
		n += len(strings.Fields(b.Text))
	}
	return n
}

// spanEvent is a tag insertion point inside a block's text.
type spanEvent struct {
	pos   int
	order int // original span index, for stable close/open pairing
	open  bool
	tag   string
}

// renderSpans applies inline spans to text. Text outside tags is HTML
// escaped rune by rune. Overlapping spans are emitted in boundary order;
// the CMS emits properly nested spans so this is not normalized further.
func renderSpans(text string, spans []Span) string {
	if len(spans) == 0 {
		return html.EscapeString(text)
	}

	runes := []rune(text)
	var events []spanEvent
	for i, s := range spans {
		if s.Start < 0 || s.End > len(runes) || s.Start >= s.End {
			continue
		}
		openTag, closeTag := spanTags(s)
		if openTag == "" {
			continue
		}
		events = append(events,
			spanEvent{pos: s.Start, order: i, open: true, tag: openTag},
			spanEvent{pos: s.End, order: i, open: false, tag: closeTag},
		)
	}
	sort.SliceStable(events, func(a, b int) bool {
		if events[a].pos != events[b].pos {
			return events[a].pos < events[b].pos
		}
		// At the same offset, close before open; close inner spans first.
		if events[a].open != events[b].open {
			return !events[a].open
		}
		if events[a].open {
			return events[a].order < events[b].order
		}
		return events[a].order > events[b].order
	})

	var buf strings.Builder
	cursor := 0
	for _, ev := range events {
		if ev.pos > cursor {
			buf.WriteString(html.EscapeString(string(runes[cursor:ev.pos])))
			cursor = ev.pos
		}
		buf.WriteString(ev.tag)
	}
	if cursor < len(runes) {
		buf.WriteString(html.EscapeString(string(runes[cursor:])))
	}
	return buf.String()
}

func spanTags(s Span) (openTag, closeTag string) {
	switch s.Type {
	case "strong":
		return "<strong>", "</strong>"
	case "em":
		return "<em>", "</em>"
	case "hyperlink":
		if s.Data == nil {
			return "", ""
		}
		href := safeURL(s.Data.URL)
		if href == "" {
			return "", ""
		}
		attrs := `<a href="` + href + `"`
		if s.Data.Target == "_blank" {
			attrs += ` target="_blank" rel="noopener noreferrer"`
		}
		return attrs + ">", "</a>"
	default:
		return "", ""
	}
}

// safeURL accepts site-relative targets and http/https/mailto/tel URLs;
// everything else is dropped.
func safeURL(raw string) string {
	val := strings.TrimSpace(raw)
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
