package views

import (
	"bytes"
	"fmt"
	"html"
	"net/url"

	"github.com/a-h/templ"
)

// Post renders a single post page: banner, title, info line, body
// sections, adjacent-post navigation and the comments widget.
func Post(cfg SiteConfig, p PostView) templ.Component {
	meta := PageMeta{
		Title:       p.Title + " | " + cfg.Name,
		Description: p.Description,
		URL:         PostURL(cfg, p.Slug),
		OGType:      "article",
	}
	return page(cfg, meta, BlogPostingJsonLD(cfg, p), func(buf *bytes.Buffer) {
		if p.Preview {
			previewBanner(buf)
		}
		if p.BannerURL != "" {
			buf.WriteString(`<div class="banner"><img src="/img/?src=` + url.QueryEscape(p.BannerURL) + `" alt="` + html.EscapeString(p.Title) + `"/></div>`)
		}
		buf.WriteString(`<article class="post">`)
		buf.WriteString("<h1>" + html.EscapeString(p.Title) + "</h1>")

		buf.WriteString(`<div class="post-info">`)
		buf.WriteString("<time>" + html.EscapeString(p.Date) + "</time>")
		buf.WriteString("<span>" + html.EscapeString(p.Author) + "</span>")
		buf.WriteString(fmt.Sprintf("<span>%d min</span>", p.ReadingTime))
		buf.WriteString("</div>")
		if p.Edited {
			buf.WriteString(`<p class="edited">* editado em ` + html.EscapeString(p.EditedAt) + "</p>")
		}

		buf.WriteString(`<div class="post-content">`)
		for _, s := range p.Sections {
			if s.Heading != "" {
				buf.WriteString("<h2>" + html.EscapeString(s.Heading) + "</h2>")
			}
			// Section HTML is produced by the richtext renderer, which
			// escapes all document text itself.
			buf.WriteString(s.HTML)
		}
		buf.WriteString("</div></article>")

		writePostNav(buf, p.Previous, p.Next)
		writeComments(buf)
	})
}

// writePostNav renders links to the adjacent posts. A missing neighbour
// is omitted entirely, never rendered as a placeholder.
func writePostNav(buf *bytes.Buffer, previous, next *NavLink) {
	if previous == nil && next == nil {
		return
	}
	buf.WriteString(`<nav class="post-nav">`)
	if previous != nil {
		buf.WriteString(`<a class="nav-previous" href="/post/` + url.PathEscape(previous.Slug) + `/">`)
		buf.WriteString("<span>" + html.EscapeString(previous.Title) + "</span><small>Post anterior</small></a>")
	}
	if next != nil {
		buf.WriteString(`<a class="nav-next" href="/post/` + url.PathEscape(next.Slug) + `/">`)
		buf.WriteString("<span>" + html.EscapeString(next.Title) + "</span><small>Próximo post</small></a>")
	}
	buf.WriteString("</nav>")
}
