package calculation

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheSize is the number of schedules kept per phase by NewEngine.
const DefaultCacheSize = 128

// CacheStats reports memoization activity.
type CacheStats struct {
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	Entries int    `json:"entries"`
}

// scheduleCache memoizes schedules by parameter key. Concurrent requests for the
// same key share one build. Failed builds are not cached.
type scheduleCache[T any] struct {
	entries *lru.Cache[string, T] // nil when caching is disabled
	group   singleflight.Group
	hits    atomic.Uint64
	misses  atomic.Uint64
}

func newScheduleCache[T any](size int) *scheduleCache[T] {
	c := &scheduleCache[T]{}
	if size > 0 {
		// lru.New only fails for non-positive sizes.
		c.entries, _ = lru.New[string, T](size)
	}
	return c
}

func (c *scheduleCache[T]) get(key string, build func() (T, error)) (T, error) {
	if c.entries == nil {
		c.misses.Add(1)
		return build()
	}
	if v, ok := c.entries.Get(key); ok {
		c.hits.Add(1)
		return v, nil
	}
	c.misses.Add(1)
	v, err, _ := c.group.Do(key, func() (any, error) {
		v, err := build()
		if err != nil {
			return v, err
		}
		c.entries.Add(key, v)
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func (c *scheduleCache[T]) stats() CacheStats {
	s := CacheStats{Hits: c.hits.Load(), Misses: c.misses.Load()}
	if c.entries != nil {
		s.Entries = c.entries.Len()
	}
	return s
}

func (c *scheduleCache[T]) purge() {
	if c.entries != nil {
		c.entries.Purge()
	}
}
