// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package cache provides the contracts shared by the cache implementations:
// the Cacher capability, the Codec text capability needed for persistence,
// and the error kinds persistence surfaces.
package cache

// Cacher acts as a best effort key value store with a bounded number of
// entries and least-recently-used eviction.
//
// Implementations are not safe for concurrent use. Callers sharing a Cacher
// across goroutines must supply their own mutual exclusion.
type Cacher[K comparable, V any] interface {
	// Put inserts an element into the cache, or updates it if the key is
	// already present. Either way the key becomes the most recently used.
	// Implementations that mirror their state to durable storage report
	// write failures here; the in-memory mutation is never rolled back.
	Put(key K, value V) error

	// Get returns the entry with the key, if it exists, and marks it as
	// the most recently used.
	Get(key K) (V, bool)

	// Len returns the number of elements in the cache.
	Len() int

	// PortionFilled returns fraction of cache currently filled (0 --> 1).
	PortionFilled() float64
}
