package spacetraveling

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/jardelbordignon/spacetraveling/prismic"
	"github.com/jardelbordignon/spacetraveling/views"
)

// handleHome serves the listing page. Published requests are served from
// the snapshot store until the page goes stale; preview requests always
// regenerate. The HTMX partial path handles the load-more fetch.
func (a *App) handleHome(c echo.Context) error {
	ref := previewRef(c)

	if c.Request().Header.Get("HX-Request") == "true" && c.QueryParam("partial") == "posts" {
		return a.handlePostsPartial(c, ref)
	}

	const route = "/"
	if ref == "" {
		if html, ok := a.Snapshots.Fresh(c.Request().Context(), route, a.snapshotTTL); ok {
			return c.HTMLBlob(http.StatusOK, html)
		}
	}

	resp, err := a.CMS.Query(c.Request().Context(), prismic.QueryOptions{
		PageSize:  a.Config.CMS.PageSize,
		Ref:       ref,
		Orderings: "[document.first_publication_date desc]",
	})
	if err != nil {
		return err
	}
	page, err := prismic.Reshape(resp)
	if err != nil {
		return err
	}

	state := ApplyPage(ListingState{}, page)
	html, err := renderToBytes(c, views.Home(a.Config.Site, a.listingView(state, ref != "")))
	if err != nil {
		return err
	}
	if ref == "" {
		a.saveSnapshot(c, route, html)
	}
	return c.HTMLBlob(http.StatusOK, html)
}

// handlePostsPartial fetches the opaque cursor URL, applies the reducer
// step and renders the listing items for the HTMX swap.
func (a *App) handlePostsPartial(c echo.Context, ref string) error {
	cursor := c.QueryParam("cursor")
	if cursor == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "cursor is required")
	}

	resp, err := a.CMS.QueryURL(c.Request().Context(), cursor)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "could not load more posts")
	}
	page, err := prismic.Reshape(resp)
	if err != nil {
		return err
	}

	state := ApplyPage(ListingState{NextPage: cursor}, page)
	return render(c, views.PostsPartial(a.listingView(state, ref != "")))
}

// handleLoadMore is the JSON pagination proxy: it fetches the cursor URL
// and returns the reshaped page. Dates are passed through unformatted;
// formatting is applied by whoever displays them.
func (a *App) handleLoadMore(c echo.Context) error {
	if !a.limiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many requests. Try again later.")
	}
	cursor := c.QueryParam("cursor")
	if cursor == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "cursor is required")
	}

	resp, err := a.CMS.QueryURL(c.Request().Context(), cursor)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "could not load more posts")
	}
	page, err := prismic.Reshape(resp)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// handlePost serves a single post page. A missing slug redirects to the
// listing instead of rendering an error page.
func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	ref := previewRef(c)
	route := "/post/" + slug + "/"

	if ref == "" {
		if html, ok := a.Snapshots.Fresh(c.Request().Context(), route, a.snapshotTTL); ok {
			return c.HTMLBlob(http.StatusOK, html)
		}
	}

	doc, err := a.CMS.GetByUID(c.Request().Context(), slug, ref)
	if err != nil {
		if errors.Is(err, prismic.ErrNotFound) {
			return c.Redirect(http.StatusSeeOther, "/")
		}
		return err
	}

	page, err := a.buildPostPage(c.Request().Context(), doc, ref)
	if err != nil {
		return err
	}
	html, err := renderToBytes(c, views.Post(a.Config.Site, page))
	if err != nil {
		return err
	}
	if ref == "" {
		a.saveSnapshot(c, route, html)
	}
	return c.HTMLBlob(http.StatusOK, html)
}

// handlePreview enters preview mode: the opaque token is stored in the
// session and forwarded to the CMS on every query until exit.
func (a *App) handlePreview(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "token is required")
	}
	if err := setPreviewRef(c, token); err != nil {
		return err
	}
	if slug := c.QueryParam("slug"); slug != "" {
		return c.Redirect(http.StatusSeeOther, "/post/"+slug+"/")
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// handlePreviewExit leaves preview mode. Exiting usually follows a
// publish, so the published listing cache is dropped too; the next feed
// or sitemap request reloads it.
func (a *App) handlePreviewExit(c echo.Context) error {
	if err := clearPreviewRef(c); err != nil {
		return err
	}
	a.Listing.Invalidate()
	return c.Redirect(http.StatusSeeOther, "/")
}

// handleRobots generates robots.txt dynamically from the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /preview/\n\nSitemap: %s/sitemap.xml\n", a.Config.Site.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = renderStatus(c, http.StatusNotFound, views.NotFound(a.Config.Site))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = renderStatus(c, code, views.ServerError(a.Config.Site))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// listingView formats a listing state for display: dates become the
// localized short form, everything else passes through.
func (a *App) listingView(state ListingState, preview bool) views.ListingView {
	items := make([]views.PostItem, 0, len(state.Items))
	for _, p := range state.Items {
		items = append(items, views.PostItem{
			Slug:     p.UID,
			Title:    p.Title,
			Subtitle: p.Subtitle,
			Author:   p.Author,
			Date:     FormatDate(p.FirstPublicationDate),
		})
	}
	return views.ListingView{Posts: items, NextPage: state.NextPage, Preview: preview}
}

func (a *App) saveSnapshot(c echo.Context, route string, html []byte) {
	if err := a.Snapshots.Put(route, html); err != nil {
		c.Logger().Errorf("save snapshot %s: %v", route, err)
	}
}

// render writes a templ component as an HTTP 200 HTML response.
func render(c echo.Context, cmp templ.Component) error {
	return renderStatus(c, http.StatusOK, cmp)
}

// renderStatus writes a templ component with a specific HTTP status code.
func renderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// renderToBytes renders a component into memory so the page can be both
// served and stored as a snapshot.
func renderToBytes(c echo.Context, cmp templ.Component) ([]byte, error) {
	var buf bytes.Buffer
	if err := cmp.Render(c.Request().Context(), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
