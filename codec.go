// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cache

// Codec renders values to their textual form and parses that form back.
// Persistent caches require one for keys and one for values; the cache core
// never formats stored types itself.
//
// Rendered text must round-trip: Parse(Render(v)) yields a value equal to v.
// Text containing a tab or a line break cannot be written to the persistence
// file and is rejected at save time.
type Codec[T any] interface {
	// Render returns the textual form of value.
	Render(value T) (string, error)

	// Parse reconstructs a value from its textual form.
	Parse(text string) (T, error)
}
