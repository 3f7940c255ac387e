// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"
	"os"

	"github.com/apex/log"
)

// Load reads and decodes the entry for key. Missing entries surface
// ErrNotFound; entries whose bytes cannot be decoded surface ErrCorrupt.
func Load[T any](s *Store, key string) (T, error) {
	var value T

	data, err := s.ReadRaw(key)
	if err != nil {
		return value, err
	}

	if err := s.codec.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return value, nil
}

// Save encodes value and writes it to the entry path for key, creating the
// file if absent and overwriting in place if present. The write is not
// atomic; a concurrent reader may observe a partial file.
func Save[T any](s *Store, key string, value T) error {
	data, err := s.codec.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, key, err)
	}

	if err := os.WriteFile(s.EntryPath(key), data, os.FileMode(0o600)); err != nil { //nolint:mnd
		return fmt.Errorf("%w: %s: %v", ErrWrite, key, err)
	}
	return nil
}

// GetOrCompute returns the cached value for key if one exists, otherwise it
// runs compute, saves the result under key, and returns it. Sequential
// callers therefore run compute at most once per key for the lifetime of the
// directory contents. A compute error propagates unchanged and never
// populates the entry.
func GetOrCompute[T any](s *Store, key string, compute func() (T, error)) (T, error) {
	if s.Has(key) {
		log.Debugf("cache hit: %s", s.EntryPath(key))
		return Load[T](s, key)
	}
	log.Debugf("cache miss: %s", s.EntryPath(key))

	value, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}

	if err := Save(s, key, value); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}
