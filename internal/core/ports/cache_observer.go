package ports

// CacheObserver receives cache events. Implementations must be safe for
// concurrent use and must not block.
//
//go:generate mockgen -source=cache_observer.go -destination=mocks/mock_cache_observer.go -package=mocks
type CacheObserver interface {
	// Hit records a lookup served from a fresh entry.
	Hit(cache string)
	// Miss records a lookup that started a computation.
	Miss(cache string)
	// Coalesced records a lookup that joined a computation already in flight.
	Coalesced(cache string)
	// Evicted records the number of stale entries removed by a sweep.
	Evicted(cache string, n int)
	// Size records the number of entries held after a write.
	Size(cache string, n int)
}
