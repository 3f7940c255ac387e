// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import "errors"

// Sentinel errors for store operations. Every failure a Store surfaces wraps
// exactly one of these, so callers can dispatch with errors.Is.
var (
	// ErrNotDirectory means the configured cache directory does not exist or
	// is not a directory. Fatal to construction.
	ErrNotDirectory = errors.New("cache dir is not a directory")

	// ErrNotFound means no entry exists on disk for the key.
	ErrNotFound = errors.New("cache entry not found")

	// ErrCorrupt means an entry exists but its bytes cannot be decoded.
	// The store never repairs or deletes the entry itself; callers wanting
	// self-healing should Remove and recompute.
	ErrCorrupt = errors.New("cache entry corrupt")

	// ErrWrite means a disk mutation failed: the entry could not be
	// encoded, written, or removed.
	ErrWrite = errors.New("cache entry i/o failure")
)
