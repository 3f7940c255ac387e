// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// EntrySuffix is appended to every entry filename. It is fixed regardless of
// the codec in use so that EntryPath stays a pure function of the key alone.
const EntrySuffix = ".cache"

// Store is a disk-backed cache rooted at a single flat directory. One
// instance is constructed per process (or per logical scope) and passed
// around explicitly; it holds no handles, so there is nothing to close.
//
// The Store provides no locking, no atomic writes and no cross-process
// coordination. Concurrent callers sharing a key must impose their own
// per-key mutual exclusion; without it, simultaneous GetOrCompute calls can
// both run the computation and the last Save wins.
type Store struct {
	dir   string
	codec Codec
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithCodec selects the serialization codec. Default is JSONCodec.
func WithCodec(c Codec) Option {
	return func(s *Store) {
		s.codec = c
	}
}

// New validates dir and returns a ready-to-use Store. The directory must
// already exist; New never creates it and has no side effects beyond the
// stat.
func New(dir string, opts ...Option) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	s := &Store{dir: dir, codec: JSONCodec{}}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dir returns the cache directory the store was constructed over.
func (s *Store) Dir() string {
	return s.dir
}

// Codec returns the serialization codec in use.
func (s *Store) Codec() Codec {
	return s.codec
}

// Digest hashes key with SHA-256 and returns the 64-character hex string
// used as the entry filename stem. Deterministic across processes.
func Digest(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// EntryPath returns the absolute path where the entry for key lives (or
// would live). Pure; performs no I/O.
func (s *Store) EntryPath(key string) string {
	return filepath.Join(s.dir, Digest(key)+EntrySuffix)
}

// Has reports whether an entry currently exists for key. A directory
// squatting on the entry path does not count.
func (s *Store) Has(key string) bool {
	info, err := os.Stat(s.EntryPath(key))
	return err == nil && !info.IsDir()
}

// Remove deletes the entry for key. Removing a key that was never stored is
// an error, not a no-op.
func (s *Store) Remove(key string) error {
	if err := os.Remove(s.EntryPath(key)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return fmt.Errorf("%w: %s: %v", ErrWrite, key, err)
	}
	return nil
}

// ReadRaw returns the stored bytes for key without decoding them. The CLI
// uses this for --output raw; library callers normally want Load.
func (s *Store) ReadRaw(key string) ([]byte, error) {
	data, err := os.ReadFile(s.EntryPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return data, nil
}
