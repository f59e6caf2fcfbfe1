// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lru

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	cache "github.com/Nauwk07/cacheLRU"
)

// delim separates the key field from the value field on each line of the
// state file. Rendered text containing the delimiter or a line break is not
// representable and fails the save.
const delim = '\t'

// maxLineBytes bounds a single state file line. bufio caps tokens at 64 KiB
// by default, which is too small for large cached values.
const maxLineBytes = 1 << 20

// pair is one decoded state file line.
type pair[K comparable, V any] struct {
	key   K
	value V
}

// persister reads and writes the full cache state as a flat text file, one
// entry per line, most recently used first.
type persister[K comparable, V any] struct {
	path   string
	keys   cache.Codec[K]
	vals   cache.Codec[V]
	logger log.Logger
}

// load decodes the state file into pairs ordered most recently used first. A
// missing file is a fresh start and yields no pairs, but its parent directory
// must exist and an existing file must be writable, so that later saves are
// known to have a working destination.
func (p *persister[K, V]) load() ([]pair[K, V], error) {
	f, err := os.Open(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			if _, err := os.Stat(filepath.Dir(p.path)); err != nil {
				return nil, ioErr("open", p.path, err)
			}
			level.Debug(p.logger).Log("msg", "no cache state on disk", "path", p.path)
			return nil, nil
		}
		return nil, ioErr("open", p.path, err)
	}
	defer f.Close()

	var pairs []pair[K, V]
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		entry, err := p.parseLine(lineNo, scanner.Text())
		if err != nil {
			return nil, formatErr("load", p.path, err)
		}
		pairs = append(pairs, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, ioErr("load", p.path, err)
	}

	w, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return nil, ioErr("open", p.path, err)
	}
	w.Close()

	level.Debug(p.logger).Log("msg", "cache state loaded", "path", p.path, "entries", len(pairs))
	return pairs, nil
}

// parseLine decodes a single `key<tab>value` line. Anything other than
// exactly two fields is malformed.
func (p *persister[K, V]) parseLine(lineNo int, line string) (pair[K, V], error) {
	parts := strings.Split(line, string(delim))
	if len(parts) != 2 {
		return pair[K, V]{}, errors.Errorf("line %d: want 2 tab separated fields, have %d", lineNo, len(parts))
	}
	key, err := p.keys.Parse(parts[0])
	if err != nil {
		return pair[K, V]{}, errors.Wrapf(err, "line %d: key", lineNo)
	}
	value, err := p.vals.Parse(parts[1])
	if err != nil {
		return pair[K, V]{}, errors.Wrapf(err, "line %d: value", lineNo)
	}
	return pair[K, V]{key: key, value: value}, nil
}

// save rewrites the state file from scratch with the store's entries, most
// recently used first. The whole state is rendered before the file is
// touched, so a rendering failure leaves the previous file intact.
func (p *persister[K, V]) save(s *store[K, V]) error {
	var buf bytes.Buffer
	var renderErr error
	s.walk(func(key K, value V) bool {
		k, err := p.keys.Render(key)
		if err == nil {
			err = checkRendered("key", k)
		}
		if err != nil {
			renderErr = err
			return false
		}
		v, err := p.vals.Render(value)
		if err == nil {
			err = checkRendered("value", v)
		}
		if err != nil {
			renderErr = err
			return false
		}
		buf.WriteString(k)
		buf.WriteByte(delim)
		buf.WriteString(v)
		buf.WriteByte('\n')
		return true
	})
	if renderErr != nil {
		level.Error(p.logger).Log("msg", "cache state not representable", "path", p.path, "err", renderErr)
		return formatErr("save", p.path, renderErr)
	}

	if err := os.WriteFile(p.path, buf.Bytes(), 0o644); err != nil {
		level.Error(p.logger).Log("msg", "cache state write failed", "path", p.path, "err", err)
		return ioErr("save", p.path, err)
	}
	level.Debug(p.logger).Log("msg", "cache state written", "path", p.path, "entries", s.size(), "bytes", buf.Len())
	return nil
}

// checkRendered rejects rendered text that cannot survive the line oriented
// file format.
func checkRendered(field, text string) error {
	if strings.ContainsAny(text, "\t\n\r") {
		return errors.Errorf("rendered %s %q contains a tab or line break", field, text)
	}
	return nil
}

func ioErr(op, path string, err error) error {
	return &cache.PersistenceError{Op: op, Path: path, Kind: cache.KindIO, Err: err}
}

func formatErr(op, path string, err error) error {
	return &cache.PersistenceError{Op: op, Path: path, Kind: cache.KindFormat, Err: err}
}
