// Package cache implements the in-memory result and render caches.
//
// Both caches are process-wide, volatile and best-effort. They are constructed once
// per process and shared by every request handler.
package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.trai.ch/streak/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

const (
	// ResultCacheName labels result cache observations.
	ResultCacheName = "result"
	// RenderCacheName labels render cache observations.
	RenderCacheName = "render"
)

type entry[T any] struct {
	data     T
	storedAt time.Time
}

func (e entry[T]) fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.storedAt) < ttl
}

// ResultCache is a short-lived cache that coalesces concurrent misses on the same
// key into a single computation.
//
// A key is Empty, Pending (a flight is registered in the group), Fresh or Stale.
// A Stale key behaves like an Empty one until the next flight stores new data.
// Failed computations store nothing.
type ResultCache[T any] struct {
	ttl        time.Duration
	maxEntries int
	observer   ports.CacheObserver

	mu      sync.Mutex
	entries map[string]entry[T]
	group   singleflight.Group
}

// NewResultCache creates a ResultCache. Zero values select the defaults, a
// negative maxEntries disables the stale sweep and a nil observer discards
// observations.
func NewResultCache[T any](ttl time.Duration, maxEntries int, observer ports.CacheObserver) *ResultCache[T] {
	if ttl <= 0 {
		ttl = DefaultResultTTL
	}
	if maxEntries == 0 {
		maxEntries = DefaultMaxEntries
	}
	if observer == nil {
		observer = nopObserver{}
	}
	return &ResultCache[T]{
		ttl:        ttl,
		maxEntries: maxEntries,
		observer:   observer,
		entries:    make(map[string]entry[T]),
	}
}

// Get returns the fresh value stored under key or runs compute to produce one.
//
// Concurrent callers missing on the same key share one run of compute and observe
// the same value or the same error. compute runs detached from the caller's
// cancellation: a caller whose ctx ends stops waiting and gets ctx.Err(), while
// the computation and its cache write proceed for everyone else.
func (c *ResultCache[T]) Get(ctx context.Context, key string, compute func(context.Context) (T, error)) (T, error) {
	if data, ok := c.lookup(key); ok {
		c.observer.Hit(ResultCacheName)
		return data, nil
	}

	// Only the caller whose closure runs leads the flight; the rest joined it.
	var led atomic.Bool
	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		led.Store(true)
		// A flight that finished between lookup and DoChan already stored the value.
		if data, ok := c.lookup(key); ok {
			c.observer.Hit(ResultCacheName)
			return data, nil
		}
		c.observer.Miss(ResultCacheName)
		data, err := compute(detached)
		if err != nil {
			return nil, err
		}
		c.store(key, data)
		return data, nil
	})

	select {
	case res := <-ch:
		if !led.Load() {
			c.observer.Coalesced(ResultCacheName)
		}
		if res.Err != nil {
			var zero T
			return zero, res.Err
		}
		data, _ := res.Val.(T)
		return data, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Len returns the number of stored entries, fresh or stale.
func (c *ResultCache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Purge drops every stored entry. In-flight computations still store their result.
func (c *ResultCache[T]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.observer.Size(ResultCacheName, 0)
}

func (c *ResultCache[T]) lookup(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || !e.fresh(time.Now(), c.ttl) {
		var zero T
		return zero, false
	}
	return e.data, true
}

func (c *ResultCache[T]) store(key string, data T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	if n := sweep(c.entries, c.maxEntries, now, c.ttl); n > 0 {
		c.observer.Evicted(ResultCacheName, n)
	}
	c.entries[key] = entry[T]{data: data, storedAt: now}
	c.observer.Size(ResultCacheName, len(c.entries))
}

// sweep deletes every stale entry once the map holds more than highWater entries.
// It returns the number of deleted entries.
func sweep[T any](entries map[string]entry[T], highWater int, now time.Time, ttl time.Duration) int {
	if highWater <= 0 || len(entries) <= highWater {
		return 0
	}
	n := 0
	for key, e := range entries {
		if !e.fresh(now, ttl) {
			delete(entries, key)
			n++
		}
	}
	return n
}

type nopObserver struct{}

func (nopObserver) Hit(string) {}
func (nopObserver) Miss(string) {}
func (nopObserver) Coalesced(string) {}
func (nopObserver) Evicted(string, int) {}
func (nopObserver) Size(string, int) {}
