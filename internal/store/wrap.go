// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

// Invoker is the capability returned by Wrap: a callable with the same
// shape as the wrapped function, resolved through the cache.
type Invoker[T any] interface {
	Invoke(args ...any) (T, error)
}

// memoized holds the target function and the fixed cache key it was wrapped
// under.
type memoized[T any] struct {
	store *Store
	key   string
	fn    func(args ...any) (T, error)
}

// Wrap returns an Invoker that routes every call through GetOrCompute under
// the fixed key. Cache identity is the key alone, not the call arguments:
// invoking the result with different arguments under the same key returns
// the first cached value and never re-runs fn. Callers wanting per-argument
// caching must fold the arguments into the key themselves.
func Wrap[T any](s *Store, key string, fn func(args ...any) (T, error)) Invoker[T] {
	return &memoized[T]{store: s, key: key, fn: fn}
}

// Invoke forwards args to the wrapped function only on a cache miss.
func (m *memoized[T]) Invoke(args ...any) (T, error) {
	return GetOrCompute(m.store, m.key, func() (T, error) {
		return m.fn(args...)
	})
}
