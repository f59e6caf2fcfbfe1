// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lru

// node is an entry in the recency list. Entries are owned by the store; the
// key is kept on the node because eviction starts from the list tail.
type node[K comparable, V any] struct {
	key        K
	value      V
	prev, next *node[K, V]
}

// store composes O(1) key lookup with an O(1) recency order: a map from key
// to node plus a doubly-linked list of the same nodes, most recently used at
// the head. The map and the list always hold exactly the same key set, and
// the map never grows past capacity.
type store[K comparable, V any] struct {
	capacity   int
	items      map[K]*node[K, V]
	head, tail *node[K, V]
}

func newStore[K comparable, V any](capacity int) *store[K, V] {
	return &store[K, V]{
		capacity: capacity,
		items:    make(map[K]*node[K, V], capacity),
	}
}

// put inserts or updates key and makes it the most recently used. Updating an
// existing key never evicts. Inserting into a full store first evicts the
// least recently used entry, which is reported to the caller.
func (s *store[K, V]) put(key K, value V) (evictedKey K, evictedValue V, evicted bool) {
	if n, ok := s.items[key]; ok {
		n.value = value
		s.moveToFront(n)
		return
	}

	if len(s.items) == s.capacity {
		evictedKey, evictedValue, evicted = s.evictOne()
	}

	n := &node[K, V]{key: key, value: value}
	s.items[key] = n
	s.pushFront(n)
	return
}

// get returns the value for key and promotes it to most recently used.
// A miss has no side effect.
func (s *store[K, V]) get(key K) (V, bool) {
	if n, ok := s.items[key]; ok {
		s.moveToFront(n)
		return n.value, true
	}
	var zero V
	return zero, false
}

// evictOne removes the least recently used entry. No-op on an empty store.
func (s *store[K, V]) evictOne() (K, V, bool) {
	n := s.tail
	if n == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	s.unlink(n)
	delete(s.items, n.key)
	return n.key, n.value, true
}

func (s *store[K, V]) size() int {
	return len(s.items)
}

// walk visits entries from most to least recently used, stopping early when
// fn returns false.
func (s *store[K, V]) walk(fn func(key K, value V) bool) {
	for n := s.head; n != nil; n = n.next {
		if !fn(n.key, n.value) {
			return
		}
	}
}

// Doubly-linked list operations for the recency order.

func (s *store[K, V]) pushFront(n *node[K, V]) {
	n.prev = nil
	n.next = s.head
	if s.head != nil {
		s.head.prev = n
	}
	s.head = n
	if s.tail == nil {
		s.tail = n
	}
}

func (s *store[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		s.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		s.tail = n.prev
	}
	n.prev, n.next = nil, nil
}

func (s *store[K, V]) moveToFront(n *node[K, V]) {
	if s.head == n {
		return
	}
	s.unlink(n)
	s.pushFront(n)
}
