// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// newTestStore returns a Store over a throwaway directory.
func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s, err := New(t.TempDir(), opts...)
	assert.NoError(t, err, "failed to create test store")
	return s
}

func TestNew(t *testing.T) {
	t.Run("valid directory", func(t *testing.T) {
		dir := t.TempDir()
		s, err := New(dir)
		assert.NoError(t, err)
		assert.Equal(t, dir, s.Dir())
		assert.Equal(t, "json", s.Codec().Name())
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := New(filepath.Join(t.TempDir(), "nope"))
		assert.ErrorIs(t, err, ErrNotDirectory)
	})

	t.Run("path is a file", func(t *testing.T) {
		f := filepath.Join(t.TempDir(), "file")
		assert.NoError(t, os.WriteFile(f, []byte("x"), 0o600))
		_, err := New(f)
		assert.ErrorIs(t, err, ErrNotDirectory)
	})

	t.Run("with codec option", func(t *testing.T) {
		s, err := New(t.TempDir(), WithCodec(GobCodec{}))
		assert.NoError(t, err)
		assert.Equal(t, "gob", s.Codec().Name())
	})
}

func TestDigest(t *testing.T) {
	// Known SHA-256 vectors.
	vectors := map[string]string{
		"cache_manager": "34d7518f35fb588fcc7768ea21389b823f33e8eb8742a34172fcfff5ec388409",
		"test":          "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
		"abc":           "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	}

	for key, want := range vectors {
		assert.Equal(t, want, Digest(key), "digest mismatch for %q", key)
		// Deterministic across repeated calls.
		assert.Equal(t, Digest(key), Digest(key))
	}

	assert.Len(t, Digest(""), 64)
}

func TestEntryPath(t *testing.T) {
	s := newTestStore(t)

	p := s.EntryPath("test")
	assert.Equal(t, s.Dir(), filepath.Dir(p))
	assert.Equal(t, Digest("test")+".cache", filepath.Base(p))

	// Distinct keys land on distinct files; same key always lands on the
	// same file.
	assert.NotEqual(t, s.EntryPath("a"), s.EntryPath("b"))
	assert.Equal(t, p, s.EntryPath("test"))
}

func TestHasTransitions(t *testing.T) {
	s := newTestStore(t)
	key := "transitions"

	assert.False(t, s.Has(key), "expected miss before save")

	assert.NoError(t, Save(s, key, "a"))
	assert.True(t, s.Has(key), "expected hit after save")

	assert.NoError(t, s.Remove(key))
	assert.False(t, s.Has(key), "expected miss after remove")
}

func TestHasIgnoresDirectories(t *testing.T) {
	s := newTestStore(t)
	key := "squatter"

	assert.NoError(t, os.MkdirAll(s.EntryPath(key), 0o755))
	assert.False(t, s.Has(key))
}

func TestRemoveMissing(t *testing.T) {
	s := newTestStore(t)
	err := s.Remove("never-stored")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := Load[string](s, "never-stored")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadCorrupt(t *testing.T) {
	s := newTestStore(t)
	key := "mangled"

	// Slam undecodable bytes straight onto the entry path.
	assert.NoError(t, os.WriteFile(s.EntryPath(key), []byte("{{{ not json"), 0o600))

	_, err := Load[map[string]string](s, key)
	assert.ErrorIs(t, err, ErrCorrupt)

	// No self-healing: the mangled entry is still there for the caller to
	// Remove explicitly.
	assert.True(t, s.Has(key))
}

func TestRoundTrip(t *testing.T) {
	type widget struct {
		Name  string   `json:"name"`
		Count int      `json:"count"`
		Tags  []string `json:"tags"`
	}

	tests := []struct {
		name      string
		opts      []Option
		checkFunc func(*testing.T, *Store)
	}{
		{
			name: "string",
			checkFunc: func(t *testing.T, s *Store) {
				assert.NoError(t, Save(s, "k", "Hello World!"))
				got, err := Load[string](s, "k")
				assert.NoError(t, err)
				assert.Equal(t, "Hello World!", got)
			},
		},
		{
			name: "struct",
			checkFunc: func(t *testing.T, s *Store) {
				in := widget{Name: "w", Count: 3, Tags: []string{"a", "b"}}
				assert.NoError(t, Save(s, "k", in))
				got, err := Load[widget](s, "k")
				assert.NoError(t, err)
				assert.Equal(t, in, got)
			},
		},
		{
			name: "map overwritten in place",
			checkFunc: func(t *testing.T, s *Store) {
				assert.NoError(t, Save(s, "k", map[string]int{"a": 1}))
				assert.NoError(t, Save(s, "k", map[string]int{"b": 2}))
				got, err := Load[map[string]int](s, "k")
				assert.NoError(t, err)
				assert.Equal(t, map[string]int{"b": 2}, got)
			},
		},
		{
			name: "struct via gob",
			opts: []Option{WithCodec(GobCodec{})},
			checkFunc: func(t *testing.T, s *Store) {
				in := widget{Name: "w", Count: 7}
				assert.NoError(t, Save(s, "k", in))
				got, err := Load[widget](s, "k")
				assert.NoError(t, err)
				assert.Equal(t, in, got)
			},
		},
		{
			name: "struct via yaml",
			opts: []Option{WithCodec(YAMLCodec{})},
			checkFunc: func(t *testing.T, s *Store) {
				in := widget{Name: "w", Tags: []string{"x"}}
				assert.NoError(t, Save(s, "k", in))
				got, err := Load[widget](s, "k")
				assert.NoError(t, err)
				assert.Equal(t, in, got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.checkFunc(t, newTestStore(t, tt.opts...))
		})
	}
}

func TestHeterogeneousValuesInOneStore(t *testing.T) {
	s := newTestStore(t)

	assert.NoError(t, Save(s, "str", "text"))
	assert.NoError(t, Save(s, "num", 42))

	str, err := Load[string](s, "str")
	assert.NoError(t, err)
	assert.Equal(t, "text", str)

	num, err := Load[int](s, "num")
	assert.NoError(t, err)
	assert.Equal(t, 42, num)
}

func TestReadRaw(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, Save(s, "k", "raw me"))

	data, err := s.ReadRaw("k")
	assert.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "raw me"))

	_, err = s.ReadRaw("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
