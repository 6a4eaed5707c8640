// Package prismic is a minimal HTTP client for the headless CMS query API.
// It covers the three operations the site needs: paginated type queries,
// lookup by UID, and publication-order adjacency. Responses are decoded
// into the shapes in types.go and never reinterpreted beyond that.
package prismic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	slogctx "github.com/veqryn/slog-context"
)

// ErrNotFound is returned when no document matches a UID lookup.
var ErrNotFound = errors.New("prismic: document not found")

// Direction selects which publication-order neighbour Adjacent fetches.
type Direction int

const (
	// Before is the previously published document.
	Before Direction = iota
	// After is the next published document.
	After
)

const (
	documentType    = "post"
	defaultTimeout  = 10 * time.Second
	defaultPageSize = 10
)

// Client queries the CMS HTTP API.
type Client struct {
	apiURL string
	token  string
	http   *http.Client
}

// New creates a Client. apiURL should be the API root without a trailing
// slash, e.g. "https://spacetraveling.cdn.prismic.io/api/v2". An empty
// token disables the Authorization header.
func New(apiURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiURL: strings.TrimRight(apiURL, "/"),
		token:  token,
		http:   &http.Client{Timeout: timeout},
	}
}

// QueryOptions controls a paginated document query.
type QueryOptions struct {
	PageSize  int
	Page      int
	Ref       string // preview ref; empty selects published content
	After     string // document ID to start after, in the current ordering
	Orderings string // e.g. "[document.first_publication_date desc]"
}

// Query runs a paginated query for post documents.
func (c *Client) Query(ctx context.Context, opts QueryOptions) (SearchResponse, error) {
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	q := url.Values{}
	q.Set("q", fmt.Sprintf(`[[at(document.type,"%s")]]`, documentType))
	q.Set("pageSize", fmt.Sprintf("%d", opts.PageSize))
	if opts.Page > 1 {
		q.Set("page", fmt.Sprintf("%d", opts.Page))
	}
	if opts.Orderings != "" {
		q.Set("orderings", opts.Orderings)
	}
	if opts.After != "" {
		q.Set("after", opts.After)
	}
	if opts.Ref != "" {
		q.Set("ref", opts.Ref)
	}
	return c.search(ctx, c.apiURL+"/documents/search?"+q.Encode())
}

// QueryURL fetches an opaque pagination cursor URL verbatim. The cursor
// comes from a previous response's NextPage field and is never rebuilt.
func (c *Client) QueryURL(ctx context.Context, cursor string) (SearchResponse, error) {
	if strings.TrimSpace(cursor) == "" {
		return SearchResponse{}, errors.New("prismic: empty cursor")
	}
	return c.search(ctx, cursor)
}

// GetByUID returns the post document with the given UID, or ErrNotFound.
func (c *Client) GetByUID(ctx context.Context, uid, ref string) (Document, error) {
	q := url.Values{}
	q.Set("q", fmt.Sprintf(`[[at(my.%s.uid,"%s")]]`, documentType, uid))
	q.Set("pageSize", "1")
	if ref != "" {
		q.Set("ref", ref)
	}
	resp, err := c.search(ctx, c.apiURL+"/documents/search?"+q.Encode())
	if err != nil {
		return Document{}, err
	}
	if len(resp.Results) == 0 {
		return Document{}, ErrNotFound
	}
	return resp.Results[0], nil
}

// Adjacent returns the document published immediately before or after doc,
// or nil when no neighbour exists in that direction.
func (c *Client) Adjacent(ctx context.Context, doc Document, dir Direction, ref string) (*Document, error) {
	orderings := "[document.first_publication_date]"
	if dir == Before {
		orderings = "[document.first_publication_date desc]"
	}
	resp, err := c.Query(ctx, QueryOptions{
		PageSize:  1,
		Ref:       ref,
		After:     doc.ID,
		Orderings: orderings,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, nil
	}
	adjacent := resp.Results[0]
	return &adjacent, nil
}

func (c *Client) search(ctx context.Context, rawURL string) (SearchResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return SearchResponse{}, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return SearchResponse{}, fmt.Errorf("prismic: search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return SearchResponse{}, fmt.Errorf("prismic: search failed: status=%d body=%s", resp.StatusCode, string(b))
	}

	var out SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return SearchResponse{}, fmt.Errorf("prismic: decode response: %w", err)
	}
	slogctx.FromCtx(ctx).DebugContext(ctx, "cms search",
		slog.Int("Results", len(out.Results)),
		slog.Duration("Elapsed", time.Since(start)),
	)
	return out, nil
}
