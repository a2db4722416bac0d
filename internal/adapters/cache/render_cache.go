package cache

import (
	"sync"
	"time"

	"go.trai.ch/streak/internal/core/ports"
)

const (
	// DefaultResultTTL is the freshness window of computed streak results.
	DefaultResultTTL = 500 * time.Second
	// DefaultRenderTTL is the freshness window of rendered cards.
	DefaultRenderTTL = 5 * time.Minute
	// DefaultMaxEntries is the high-water mark past which stale entries are swept.
	DefaultMaxEntries = 1000
)

// RenderCache stores rendered output keyed by a normalized parameter signature.
//
// Renders are cheap and local, so concurrent misses on the same key may each
// render; the last writer wins.
type RenderCache struct {
	ttl        time.Duration
	maxEntries int
	observer   ports.CacheObserver

	mu      sync.Mutex
	entries map[string]entry[string]
}

// NewRenderCache creates a RenderCache. Zero values select the defaults, a
// negative maxEntries disables the stale sweep and a nil observer discards
// observations.
func NewRenderCache(ttl time.Duration, maxEntries int, observer ports.CacheObserver) *RenderCache {
	if ttl <= 0 {
		ttl = DefaultRenderTTL
	}
	if maxEntries == 0 {
		maxEntries = DefaultMaxEntries
	}
	if observer == nil {
		observer = nopObserver{}
	}
	return &RenderCache{
		ttl:        ttl,
		maxEntries: maxEntries,
		observer:   observer,
		entries:    make(map[string]entry[string]),
	}
}

// Get returns the fresh output stored under key or calls render and stores its
// output. A render error is returned to the caller and nothing is stored.
func (c *RenderCache) Get(key string, render func() (string, error)) (string, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	c.mu.Unlock()

	if ok && e.fresh(time.Now(), c.ttl) {
		c.observer.Hit(RenderCacheName)
		return e.data, nil
	}
	c.observer.Miss(RenderCacheName)

	output, err := render()
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	if n := sweep(c.entries, c.maxEntries, now, c.ttl); n > 0 {
		c.observer.Evicted(RenderCacheName, n)
	}
	c.entries[key] = entry[string]{data: output, storedAt: now}
	c.observer.Size(RenderCacheName, len(c.entries))

	return output, nil
}

// Len returns the number of stored entries, fresh or stale.
func (c *RenderCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Purge drops every stored entry.
func (c *RenderCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.observer.Size(RenderCacheName, 0)
}
