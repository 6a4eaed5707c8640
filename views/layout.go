// Package views holds the templ components for every page of the site.
// Components are written as templ.ComponentFunc building HTML into a
// buffer; all dynamic text goes through html.EscapeString.
package views

import (
	"bytes"
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// HTMXScriptURL is the pinned CDN source of the htmx runtime driving the
// load-more control. The serving CSP must allow this origin.
const HTMXScriptURL = "https://unpkg.com/htmx.org@1.9.12/dist/htmx.min.js"

// page wraps body in the site shell: head metadata, header, footer.
func page(cfg SiteConfig, meta PageMeta, jsonLD string, body func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString("<!DOCTYPE html><html lang=\"pt-BR\"><head>")
		buf.WriteString("<meta charset=\"utf-8\"/>")
		buf.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>")
		buf.WriteString("<title>" + html.EscapeString(meta.Title) + "</title>")
		if meta.Description != "" {
			buf.WriteString("<meta name=\"description\" content=\"" + html.EscapeString(meta.Description) + "\"/>")
		}
		if meta.URL != "" {
			buf.WriteString("<link rel=\"canonical\" href=\"" + html.EscapeString(meta.URL) + "\"/>")
			buf.WriteString("<meta property=\"og:url\" content=\"" + html.EscapeString(meta.URL) + "\"/>")
		}
		buf.WriteString("<meta property=\"og:title\" content=\"" + html.EscapeString(meta.Title) + "\"/>")
		if meta.OGType != "" {
			buf.WriteString("<meta property=\"og:type\" content=\"" + meta.OGType + "\"/>")
		}
		buf.WriteString("<link rel=\"icon\" href=\"/favicon.svg\" type=\"image/svg+xml\"/>")
		buf.WriteString("<link rel=\"stylesheet\" href=\"/public/styles.css\"/>")
		buf.WriteString("<script src=\"" + HTMXScriptURL + "\" defer></script>")
		if jsonLD != "" {
			buf.WriteString("<script type=\"application/ld+json\">" + jsonLD + "</script>")
		}
		buf.WriteString("</head><body>")
		header(&buf)
		buf.WriteString("<main class=\"container\">")
		body(&buf)
		buf.WriteString("</main></body></html>")
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func header(buf *bytes.Buffer) {
	buf.WriteString(`<header class="site-header"><a href="/" aria-label="Home">`)
	buf.WriteString(`<img src="/public/logo.svg" alt="logo"/>`)
	buf.WriteString(`</a></header>`)
}

// NotFound renders the styled 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	meta := PageMeta{Title: "Página não encontrada | " + cfg.Name}
	return page(cfg, meta, "", func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="error-page"><h1>404</h1>`)
		buf.WriteString(`<p>Essa página não existe.</p>`)
		buf.WriteString(`<a href="/">Voltar para a home</a></section>`)
	})
}

// ServerError renders the styled 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	meta := PageMeta{Title: "Erro | " + cfg.Name}
	return page(cfg, meta, "", func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="error-page"><h1>500</h1>`)
		buf.WriteString(`<p>Algo deu errado. Tente novamente em instantes.</p>`)
		buf.WriteString(`<a href="/">Voltar para a home</a></section>`)
	})
}

func previewBanner(buf *bytes.Buffer) {
	buf.WriteString(`<aside class="preview-banner"><a href="/preview/exit/">Sair do modo Preview</a></aside>`)
}
