// Package spacetraveling is a blog front-end for a headless CMS, built
// with Go, Echo, and templ. Content lives entirely in the CMS; this
// server queries it, renders listing and post pages, and keeps generated
// pages in a snapshot store until they go stale.
package spacetraveling

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jardelbordignon/spacetraveling/prismic"
)

// loadMoreMax and loadMoreWindow bound pagination-proxy traffic per IP.
const (
	loadMoreMax    = 30
	loadMoreWindow = time.Minute
)

// App wires together the CMS client, snapshot store, caches, middleware
// and routes.
type App struct {
	Config    Config
	Echo      *echo.Echo
	CMS       *prismic.Client
	Snapshots *SnapshotStore
	Listing   *listingCache

	limiter     *rateLimiter
	snapshotTTL time.Duration
	staticDir   string
}

// New creates an App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.FillDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: cfg.Server.StaticDir,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start initializes the CMS client, snapshot store, middleware and
// routes, then starts the server. It blocks until shutdown.
func (a *App) Start() error {
	if err := a.init(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Server.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// init builds everything Start needs without binding a listener, so
// tests can drive the Echo instance directly.
func (a *App) init() error {
	if a.Config.CMS.APIURL == "" {
		return fmt.Errorf("spacetraveling: cms.api_url is required")
	}
	if a.Config.Server.SessionSecret == "" {
		return fmt.Errorf("spacetraveling: server.session_secret is required")
	}

	a.CMS = prismic.New(a.Config.CMS.APIURL, a.Config.CMS.AccessToken, a.Config.CMSTimeoutDuration())
	a.snapshotTTL = a.Config.SnapshotTTLDuration()

	snapshots, err := NewSnapshotStore(a.Config.Server.DatabasePath)
	if err != nil {
		return fmt.Errorf("spacetraveling: init snapshot store: %w", err)
	}
	a.Snapshots = snapshots

	// The feed and sitemap listing share the page staleness window.
	a.Listing = newListingCache(a.CMS, 100, a.snapshotTTL)
	a.limiter = newRateLimiter(loadMoreMax, loadMoreWindow)

	a.setupMiddleware()
	a.setupRoutes()
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/post/:slug/", a.handlePost)
	e.GET("/img/", a.handleImage)
	e.GET("/api/posts", a.handleLoadMore)

	e.GET("/preview/", a.handlePreview)
	e.GET("/preview/exit/", a.handlePreviewExit)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Snapshots != nil {
		return a.Snapshots.Close()
	}
	return nil
}
