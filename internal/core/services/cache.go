package services

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/massbar-labs/massbar-cli/internal/core/domain"
	"github.com/massbar-labs/massbar-cli/internal/core/ports/driven"
	"github.com/massbar-labs/massbar-cli/internal/logger"
)

// CacheTTL is how long a fetched snippet list stays fresh.
const CacheTTL = 10 * time.Second

// SnippetCache holds the most recently fetched snippet list plus its fetch
// instant, and decides when a refresh is due. A fetch failure never clears
// the cache: stale data is preferred over no data.
type SnippetCache struct {
	ttl time.Duration
	now func() time.Time

	// group collapses concurrent refresh attempts into one fetch.
	group singleflight.Group

	mu               sync.RWMutex
	api              driven.SnippetAPI
	excludeFavorites bool
	snippets         []domain.Snippet
	fetchedAt        time.Time
	lastErr          string
}

// NewSnippetCache creates an empty cache backed by the given API client.
func NewSnippetCache(api driven.SnippetAPI) *SnippetCache {
	return &SnippetCache{
		ttl: CacheTTL,
		now: time.Now,
		api: api,
	}
}

// Configure swaps the API client and favourite-exclusion setting, then
// invalidates the cache. Called when the base URL or the excludeFavorites
// option changes.
func (c *SnippetCache) Configure(api driven.SnippetAPI, excludeFavorites bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.api = api
	c.excludeFavorites = excludeFavorites
	c.fetchedAt = time.Time{}
}

// EnsureFresh refetches the snippet list when the cache is empty or older
// than the TTL. On success the list and timestamp are replaced and the last
// error cleared; on failure the existing data stays untouched and the error
// message is recorded for diagnostic display. Concurrent callers within one
// staleness window share a single fetch.
func (c *SnippetCache) EnsureFresh(ctx context.Context) {
	c.mu.RLock()
	stale := len(c.snippets) == 0 || c.now().Sub(c.fetchedAt) > c.ttl
	api := c.api
	exclude := c.excludeFavorites
	c.mu.RUnlock()

	if !stale || api == nil {
		return
	}

	// The key is constant: there is only ever one list to fetch.
	// Failures are recorded in lastErr, never returned.
	_, _, _ = c.group.Do("refresh", func() (any, error) {
		data, err := api.ListSnippets(ctx, exclude)

		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil {
			c.lastErr = err.Error()
			logger.Warn("snippet fetch failed: %v", err)
			return nil, nil
		}
		c.snippets = data
		c.fetchedAt = c.now()
		c.lastErr = ""
		logger.Debug("snippet cache refreshed: %d snippets", len(data))
		return nil, nil
	})
}

// Invalidate forces the next EnsureFresh to refetch regardless of age.
func (c *SnippetCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchedAt = time.Time{}
}

// Snapshot returns the current cached list, possibly stale or empty.
// The returned slice is the published snapshot; callers must not mutate it.
func (c *SnippetCache) Snapshot() []domain.Snippet {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snippets
}

// Count returns the number of cached snippets.
func (c *SnippetCache) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.snippets)
}

// LastError returns the most recent fetch failure message, or "" after a
// successful fetch.
func (c *SnippetCache) LastError() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}
