// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/staranto/cachectlgo/internal/store"
)

func TestBuildLsDataset(t *testing.T) {
	dir := t.TempDir()
	s, err := store.New(dir)
	assert.NoError(t, err)

	assert.NoError(t, store.Save(s, "alpha", "one"))
	assert.NoError(t, store.Save(s, "beta", "two"))

	// Noise that must not show up: a subdirectory and a file without the
	// entry suffix.
	assert.NoError(t, os.MkdirAll(filepath.Join(dir, "subdir"), 0o755))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "stray.txt"), []byte("x"), 0o600))

	dataset, err := buildLsDataset(dir, false)
	assert.NoError(t, err)
	assert.Len(t, dataset, 2)

	digests := map[string]bool{}
	for _, row := range dataset {
		digests[row["digest"].(string)] = true
		assert.Contains(t, row, "size")
		assert.Contains(t, row, "age")
		assert.Contains(t, row, "path")
	}
	assert.True(t, digests[store.Digest("alpha")])
	assert.True(t, digests[store.Digest("beta")])
}

func TestBuildLsDatasetRawBytes(t *testing.T) {
	dir := t.TempDir()
	s, err := store.New(dir)
	assert.NoError(t, err)
	assert.NoError(t, store.Save(s, "k", "abc"))

	dataset, err := buildLsDataset(dir, true)
	assert.NoError(t, err)
	assert.Len(t, dataset, 1)
	// JSON-encoded "abc" is 5 bytes on disk.
	assert.Equal(t, int64(5), dataset[0]["size"])
}

func TestBuildLsDatasetMissingDir(t *testing.T) {
	_, err := buildLsDataset(filepath.Join(t.TempDir(), "nope"), false)
	assert.Error(t, err)
}
