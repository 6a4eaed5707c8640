package spacetraveling

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const (
	maxBannerWidth   = 1440
	jpegQuality      = 80
	maxBannerBytes   = 10 << 20 // 10MB
	imageCacheSubdir = "cache"
)

var imageFetchClient = &http.Client{Timeout: 15 * time.Second}

// handleImage proxies and downscales remote banner images from the CMS
// CDN. Processed bytes are cached on disk under the static dir so each
// banner is fetched and resized once.
func (a *App) handleImage(c echo.Context) error {
	src := c.QueryParam("src")
	if !allowedImageURL(src) {
		return c.NoContent(http.StatusBadRequest)
	}

	cachePath := filepath.Join(a.staticDir, imageCacheSubdir, imageCacheName(src))
	if data, err := os.ReadFile(cachePath); err == nil {
		return c.Blob(http.StatusOK, "image/jpeg", data)
	}

	data, err := a.fetchAndResize(c, src)
	if err != nil {
		c.Logger().Errorf("banner proxy: %v", err)
		return c.NoContent(http.StatusBadGateway)
	}

	if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err == nil {
		_ = os.WriteFile(cachePath, data, 0o644)
	}
	return c.Blob(http.StatusOK, "image/jpeg", data)
}

func (a *App) fetchAndResize(c echo.Context, src string) ([]byte, error) {
	req, err := http.NewRequestWithContext(c.Request().Context(), http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}
	resp, err := imageFetchClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch banner: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch banner: status=%d", resp.StatusCode)
	}
	return processBanner(io.LimitReader(resp.Body, maxBannerBytes))
}

// processBanner decodes an image, downscales it to maxBannerWidth when
// wider, and re-encodes as JPEG.
func processBanner(src io.Reader) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode banner: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxBannerWidth {
		newH := h * maxBannerWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxBannerWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// allowedImageURL restricts the proxy to absolute http(s) URLs so it
// cannot be pointed at local files or arbitrary schemes.
func allowedImageURL(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func imageCacheName(src string) string {
	return fmt.Sprintf("%x.jpg", sha1.Sum([]byte(src)))
}
