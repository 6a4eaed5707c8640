package spacetraveling

import (
	"context"
	"sync"
	"time"

	"github.com/jardelbordignon/spacetraveling/prismic"
)

// listingCache is an in-memory TTL cache of the published post listing,
// used by the feed and sitemap so they do not hit the CMS per request.
type listingCache struct {
	mu      sync.RWMutex
	posts   []prismic.Post
	fetched time.Time
	ttl     time.Duration

	cms      *prismic.Client
	pageSize int
}

func newListingCache(cms *prismic.Client, pageSize int, ttl time.Duration) *listingCache {
	return &listingCache{cms: cms, pageSize: pageSize, ttl: ttl}
}

func (c *listingCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh query.
func (c *listingCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.mu.Unlock()
}

// Posts returns the cached listing, reloading from the CMS when stale.
// It tries a read lock first; a write lock is only taken for a reload.
func (c *listingCache) Posts(ctx context.Context) ([]prismic.Post, error) {
	c.mu.RLock()
	if c.valid() {
		posts := c.posts
		c.mu.RUnlock()
		return posts, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.posts, nil
	}
	resp, err := c.cms.Query(ctx, prismic.QueryOptions{
		PageSize:  c.pageSize,
		Orderings: "[document.first_publication_date desc]",
	})
	if err != nil {
		return nil, err
	}
	page, err := prismic.Reshape(resp)
	if err != nil {
		return nil, err
	}
	c.posts = page.Results
	c.fetched = time.Now()
	return c.posts, nil
}
