// Package core provides the client-side caching primitives shared by the stylist services.
package core

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultStaleTime is how long a fetched entry is served without refetching.
const DefaultStaleTime = 5 * time.Minute

// Key identifies a cached query. Keys are hierarchical: {"workshops", "detail", "w1"} lives
// under the prefixes {"workshops"} and {"workshops", "detail"}.
type Key []string

// String renders the key for logs and singleflight.
func (k Key) String() string { return strings.Join(k, "/") }

// HasPrefix reports whether every element of prefix matches the start of k.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}
	return true
}

type entry struct {
	key       Key
	value     any
	updatedAt time.Time
	invalid   bool
}

// QueryCacheOptions configures a QueryCache.
type QueryCacheOptions struct {
	StaleTime time.Duration
	Now       func() time.Time
}

// QueryCache holds results of read queries so views can share them and mutations can
// patch them in place. Safe for concurrent use.
type QueryCache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	// epoch changes on Clear so in-flight fetches cannot repopulate a cleared cache.
	epoch uint64

	group     singleflight.Group
	staleTime time.Duration
	now       func() time.Time
}

// NewQueryCache constructs an empty cache.
func NewQueryCache(opts QueryCacheOptions) *QueryCache {
	stale := opts.StaleTime
	if stale <= 0 {
		stale = DefaultStaleTime
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &QueryCache{entries: make(map[string]*entry), staleTime: stale, now: now}
}

// Get returns the cached value for key and whether it is still fresh.
func (c *QueryCache) Get(key Key) (value any, fresh bool, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key.String()]
	if !ok {
		return nil, false, false
	}
	return e.value, c.freshLocked(e), true
}

func (c *QueryCache) freshLocked(e *entry) bool {
	return !e.invalid && c.now().Sub(e.updatedAt) < c.staleTime
}

// SetQueryData stores value under key and marks it fresh.
func (c *QueryCache) SetQueryData(key Key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(key, value)
}

func (c *QueryCache) setLocked(key Key, value any) {
	c.entries[key.String()] = &entry{key: append(Key(nil), key...), value: value, updatedAt: c.now()}
}

// UpdateQueries rewrites every entry under prefix with fn. Returning keep=false from fn leaves
// the entry untouched. Updated entries keep their freshness.
func (c *QueryCache) UpdateQueries(prefix Key, fn func(key Key, value any) (updated any, keep bool)) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.entries {
		if !e.key.HasPrefix(prefix) {
			continue
		}
		if v, ok := fn(e.key, e.value); ok {
			e.value = v
			n++
		}
	}
	return n
}

// Invalidate marks every entry under prefix stale so the next Fetch refetches it. The old
// value remains readable through Get.
func (c *QueryCache) Invalidate(prefix Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.entries {
		if e.key.HasPrefix(prefix) {
			e.invalid = true
			n++
		}
	}
	return n
}

// Remove drops every entry under prefix.
func (c *QueryCache) Remove(prefix Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entries {
		if e.key.HasPrefix(prefix) {
			delete(c.entries, k)
		}
	}
}

// Clear drops everything. Fetches started before Clear do not store their results.
func (c *QueryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
	c.epoch++
}

// Len is the number of cached entries.
func (c *QueryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *QueryCache) currentEpoch() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.epoch
}

// storeIfEpoch stores value unless the cache was cleared since epoch.
func (c *QueryCache) storeIfEpoch(key Key, value any, epoch uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		return
	}
	c.setLocked(key, value)
}

// Fetch returns the fresh cached value for key or runs fn to load it. Concurrent fetches of the
// same key share one call of fn, which runs detached from any single caller's cancellation;
// a caller whose ctx ends stops waiting without failing the others. Errors are not cached.
func Fetch[T any](ctx context.Context, c *QueryCache, key Key, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if v, fresh, ok := c.Get(key); ok && fresh {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	epoch := c.currentEpoch()
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key.String(), func() (any, error) {
		res, err := fn(shared)
		if err != nil {
			return nil, err
		}
		c.storeIfEpoch(key, res, epoch)
		return res, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return zero, r.Err
		}
		return r.Val.(T), nil
	}
}

// GetQueryData returns the cached value for key when it exists and has type T, fresh or not.
func GetQueryData[T any](c *QueryCache, key Key) (T, bool) {
	v, _, ok := c.Get(key)
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}
