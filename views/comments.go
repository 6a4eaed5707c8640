package views

import "bytes"

// Comment widget configuration. Fixed, not parameterized per post: the
// third party correlates issues to pages by URL.
const (
	commentsAnchorID  = "post-comments"
	commentsScriptSrc = "https://utteranc.es/client.js"
	commentsRepo      = "jardelbordignon/spacetraveling"
	commentsIssueTerm = "url"
	commentsLabel     = "comment :speech_balloon:"
	commentsTheme     = "photon-dark"
)

// writeComments emits the comments anchor with the widget script inside
// it. Rendering server-side makes the injection one-shot per page load,
// so a page can never accumulate duplicate widget scripts.
func writeComments(buf *bytes.Buffer) {
	buf.WriteString(`<section id="` + commentsAnchorID + `" class="comments">`)
	buf.WriteString(`<script src="` + commentsScriptSrc + `"`)
	buf.WriteString(` repo="` + commentsRepo + `"`)
	buf.WriteString(` issue-term="` + commentsIssueTerm + `"`)
	buf.WriteString(` label="` + commentsLabel + `"`)
	buf.WriteString(` theme="` + commentsTheme + `"`)
	buf.WriteString(` crossorigin="anonymous" async></script>`)
	buf.WriteString(`</section>`)
}
