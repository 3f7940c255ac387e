// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package store implements the disk-backed memoization cache. A Store maps a
// caller-supplied key to a flat file named by the SHA-256 digest of the key,
// serializes values through a pluggable Codec, and layers get-or-compute and
// a function-wrapping combinator on top of the file primitives. The cache
// directory itself is the index; there is no manifest and no eviction.
package store
