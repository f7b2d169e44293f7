package cache

import (
	"errors"
	"sync"
	"time"
)

// ErrRateLimitExceeded is returned when the sliding window request budget is
// exhausted. Callers should wait for the window to elapse before retrying.
var ErrRateLimitExceeded = errors.New("rate limit exceeded")

type entry struct {
	data      any
	timestamp time.Time
}

// RateLimitedCache deduplicates and rate-limits outbound producer calls.
// Fresh cache hits are served without consuming request budget; misses invoke
// the producer and count one request against the sliding window.
type RateLimitedCache struct {
	mu          sync.Mutex
	entries     map[string]entry
	buckets     map[int64]int // per-minute request counters
	maxRequests int
	window      time.Duration
	ttl         time.Duration
	now         func() time.Time
}

type Options struct {
	MaxRequests int
	Window      time.Duration
	CacheTTL    time.Duration // zero disables caching
}

func New(opts Options) *RateLimitedCache {
	if opts.MaxRequests <= 0 {
		opts.MaxRequests = 30
	}
	if opts.Window <= 0 {
		opts.Window = time.Minute
	}
	return &RateLimitedCache{
		entries:     make(map[string]entry),
		buckets:     make(map[int64]int),
		maxRequests: opts.MaxRequests,
		window:      opts.Window,
		ttl:         opts.CacheTTL,
		now:         time.Now,
	}
}

// Execute returns the cached value for key when one is fresh, otherwise
// invokes producer under the rate limit and caches its result. The producer
// runs outside the lock, so concurrent misses on the same key may both fire;
// the request counter itself never under-counts.
func Execute[T any](c *RateLimitedCache, key string, producer func() (T, error)) (T, error) {
	var zero T

	c.mu.Lock()
	if c.ttl > 0 {
		if e, ok := c.entries[key]; ok && c.now().Sub(e.timestamp) < c.ttl {
			c.mu.Unlock()
			v, ok := e.data.(T)
			if !ok {
				return zero, errors.New("cache entry has unexpected type")
			}
			return v, nil
		}
	}
	if c.inWindowLocked() >= c.maxRequests {
		c.mu.Unlock()
		return zero, ErrRateLimitExceeded
	}
	c.buckets[c.bucketKey(c.now())]++
	c.mu.Unlock()

	v, err := producer()
	if err != nil {
		return zero, err
	}

	if c.ttl > 0 {
		c.mu.Lock()
		c.entries[key] = entry{data: v, timestamp: c.now()}
		c.mu.Unlock()
	}
	return v, nil
}

func (c *RateLimitedCache) bucketKey(t time.Time) int64 {
	return t.Unix() / 60
}

// inWindowLocked prunes expired buckets and sums the remainder.
func (c *RateLimitedCache) inWindowLocked() int {
	cutoff := c.bucketKey(c.now().Add(-c.window))
	var total int
	for minute, count := range c.buckets {
		if minute < cutoff {
			delete(c.buckets, minute)
			continue
		}
		total += count
	}
	return total
}

// Invalidate drops one cached key, e.g. after a forced refresh.
func (c *RateLimitedCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
