package views

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/url"

	"github.com/a-h/templ"
)

// Home renders the post listing page.
func Home(cfg SiteConfig, l ListingView) templ.Component {
	meta := PageMeta{
		Title:       cfg.Name,
		Description: cfg.Description,
		URL:         buildURL(cfg.URL),
		OGType:      "website",
	}
	return page(cfg, meta, WebsiteJsonLD(cfg), func(buf *bytes.Buffer) {
		if l.Preview {
			previewBanner(buf)
		}
		buf.WriteString(`<div id="post-list" class="posts">`)
		for _, p := range l.Posts {
			writePostItem(buf, p)
		}
		buf.WriteString("</div>")
		writeLoadMore(buf, l.NextPage)
	})
}

// PostsPartial renders a page of listing items for the load-more fetch,
// plus an out-of-band swap that replaces the load-more control with one
// pointing at the new cursor (or nothing when the listing ends).
func PostsPartial(l ListingView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		for _, p := range l.Posts {
			writePostItem(&buf, p)
		}
		buf.WriteString(`<div id="load-more" hx-swap-oob="true">`)
		if l.NextPage != "" {
			writeLoadMoreButton(&buf, l.NextPage)
		}
		buf.WriteString("</div>")
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writePostItem(buf *bytes.Buffer, p PostItem) {
	buf.WriteString(`<a class="post-item" href="/post/` + url.PathEscape(p.Slug) + `/">`)
	buf.WriteString("<h2>" + html.EscapeString(p.Title) + "</h2>")
	buf.WriteString("<span>" + html.EscapeString(p.Subtitle) + "</span>")
	buf.WriteString(`<div class="post-info">`)
	buf.WriteString("<time>" + html.EscapeString(p.Date) + "</time>")
	buf.WriteString("<span>" + html.EscapeString(p.Author) + "</span>")
	buf.WriteString("</div></a>")
}

// writeLoadMore emits the load-more container. The control itself is only
// offered while a next-page cursor exists.
func writeLoadMore(buf *bytes.Buffer, cursor string) {
	buf.WriteString(`<div id="load-more">`)
	if cursor != "" {
		writeLoadMoreButton(buf, cursor)
	}
	buf.WriteString("</div>")
}

func writeLoadMoreButton(buf *bytes.Buffer, cursor string) {
	target := "/?partial=posts&cursor=" + url.QueryEscape(cursor)
	buf.WriteString(`<button class="load-more" hx-get="` + html.EscapeString(target) + `"`)
	buf.WriteString(` hx-target="#post-list" hx-swap="beforeend">Carregar mais posts</button>`)
}
