// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package lru implements a fixed capacity cache with least recently used
// eviction, optionally mirrored to a flat text file after every write.
package lru

import (
	"github.com/go-kit/log"

	cache "github.com/Nauwk07/cacheLRU"
)

// Stats counts cache activity since construction. Entries restored from disk
// at construction are not counted.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Puts      uint64
	Evictions uint64
}

// Option configures a Cache.
type Option[K comparable, V any] func(*Cache[K, V])

// WithOnEvict registers fn to run whenever a put pushes the least recently
// used entry out. It does not run for entries dropped while restoring state
// from disk.
func WithOnEvict[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *Cache[K, V]) { c.onEvict = fn }
}

// WithLogger routes the cache's diagnostics to logger. The default discards
// them.
func WithLogger[K comparable, V any](logger log.Logger) Option[K, V] {
	return func(c *Cache[K, V]) { c.logger = logger }
}

// Cache is a fixed capacity key value cache. A put on a full cache evicts
// the least recently used entry; puts and gets both mark the touched entry
// as most recently used. Not safe for concurrent use.
type Cache[K comparable, V any] struct {
	capacity int
	store    *store[K, V]
	persist  *persister[K, V]
	onEvict  func(K, V)
	logger   log.Logger
	stats    Stats
}

// New returns an in-memory cache holding at most capacity entries.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, cache.ErrInvalidCapacity
	}
	c := &Cache[K, V]{
		capacity: capacity,
		store:    newStore[K, V](capacity),
		logger:   log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewPersistent returns a cache mirrored to the file at path. If the file
// exists its entries are restored with their recorded recency, keeping at
// most capacity of the most recently used; a missing file is a fresh start.
// Every later Put rewrites the file.
func NewPersistent[K comparable, V any](
	capacity int,
	path string,
	keys cache.Codec[K],
	vals cache.Codec[V],
	opts ...Option[K, V],
) (*Cache[K, V], error) {
	c, err := New[K, V](capacity, opts...)
	if err != nil {
		return nil, err
	}
	if keys == nil || vals == nil {
		return nil, cache.ErrNilCodec
	}
	c.persist = &persister[K, V]{path: path, keys: keys, vals: vals, logger: c.logger}
	pairs, err := c.persist.load()
	if err != nil {
		return nil, err
	}
	c.restore(pairs)
	return c, nil
}

// restore seeds the store from pairs ordered most recently used first. Only
// the first capacity pairs fit; the rest were least recently used and are
// dropped without running the eviction callback, since this cache never held
// them. Re-inserting in reverse reproduces the recorded recency.
func (c *Cache[K, V]) restore(pairs []pair[K, V]) {
	if len(pairs) > c.capacity {
		pairs = pairs[:c.capacity]
	}
	for i := len(pairs) - 1; i >= 0; i-- {
		c.store.put(pairs[i].key, pairs[i].value)
	}
}

// Put stores value under key and makes it the most recently used entry,
// evicting the least recently used entry if the cache is full. In persistent
// mode the new state is then written through to disk. A write failure is
// reported after memory is already updated; the next successful Put brings
// the file back in sync.
func (c *Cache[K, V]) Put(key K, value V) error {
	evictedKey, evictedValue, evicted := c.store.put(key, value)
	c.stats.Puts++
	if evicted {
		c.stats.Evictions++
		if c.onEvict != nil {
			c.onEvict(evictedKey, evictedValue)
		}
	}
	if c.persist == nil {
		return nil
	}
	return c.persist.save(c.store)
}

// Get returns the value stored under key and makes it the most recently used
// entry. Reads never touch the state file.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	value, ok := c.store.get(key)
	if ok {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	return value, ok
}

// Len returns the number of entries currently held.
func (c *Cache[K, V]) Len() int {
	return c.store.size()
}

// Cap returns the maximum number of entries.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Keys returns the cached keys ordered from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.store.size())
	c.store.walk(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Stats returns a snapshot of the activity counters.
func (c *Cache[K, V]) Stats() Stats {
	return c.stats
}

// SaveTo writes the current state to path in the persistence file format.
// It works on any cache, persistent or not, does not modify the cache, and
// does not start mirroring to path.
func (c *Cache[K, V]) SaveTo(path string, keys cache.Codec[K], vals cache.Codec[V]) error {
	if keys == nil || vals == nil {
		return cache.ErrNilCodec
	}
	p := &persister[K, V]{path: path, keys: keys, vals: vals, logger: c.logger}
	return p.save(c.store)
}

// PortionFilled returns fraction of cache currently filled (0 --> 1)
func (c *Cache[K, V]) PortionFilled() float64 {
	return float64(c.store.size()) / float64(c.capacity)
}

// Interface compliance
var _ cache.Cacher[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)
