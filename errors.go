// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cache

import "errors"

// Sentinel errors for cache construction and persistence.
var (
	// ErrInvalidCapacity reports a non-positive capacity argument.
	ErrInvalidCapacity = errors.New("cache: capacity must be a positive number of entries")

	// ErrNilCodec reports a missing key or value codec.
	ErrNilCodec = errors.New("cache: nil codec")

	// ErrIO matches any PersistenceError caused by the backing file being
	// unreadable, unwritable, or uncreatable.
	ErrIO = errors.New("cache: persistence i/o failure")

	// ErrFormat matches any PersistenceError caused by content that does not
	// render into, or parse from, well-formed key/value lines.
	ErrFormat = errors.New("cache: malformed persistence data")
)

// Kind classifies a PersistenceError.
type Kind uint8

const (
	// KindIO covers open, create, read, and write failures on the backing file.
	KindIO Kind = iota + 1

	// KindFormat covers lines that cannot be parsed on load and renderings
	// that cannot be written on save.
	KindFormat
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindFormat:
		return "format"
	}
	return "unknown"
}

// PersistenceError describes a failed interaction with a cache's backing
// file. It matches ErrIO or ErrFormat under errors.Is according to its Kind,
// and the underlying cause remains reachable through errors.As/Unwrap.
type PersistenceError struct {
	Op   string // "open", "load" or "save"
	Path string
	Kind Kind
	Err  error
}

func (e *PersistenceError) Error() string {
	return "cache: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Is reports whether target names this error's kind.
func (e *PersistenceError) Is(target error) bool {
	switch target {
	case ErrIO:
		return e.Kind == KindIO
	case ErrFormat:
		return e.Kind == KindFormat
	}
	return false
}
