// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Cache identity is the key alone, not the arguments. Calling the wrapped
// function with different arguments under the same key returns the first
// cached result. That is the combinator's documented contract, and this
// test pins it in place.
func TestWrapCachesByKeyNotByArgs(t *testing.T) {
	s := newTestStore(t)

	calls := 0
	concat := func(args ...any) (string, error) {
		calls++
		out := ""
		for _, a := range args {
			out += fmt.Sprint(a)
		}
		return out, nil
	}

	wrapped := Wrap(s, "expensive_name", concat)

	first, err := wrapped.Invoke("Hello", " ", "World!")
	assert.NoError(t, err)
	assert.Equal(t, "Hello World!", first)

	second, err := wrapped.Invoke("X", "Y", "Z")
	assert.NoError(t, err)
	assert.Equal(t, "Hello World!", second, "different args under the same key must return the first result")
	assert.Equal(t, 1, calls, "the function body must execute only once")
}

func TestWrapSharesEntriesWithGetOrCompute(t *testing.T) {
	s := newTestStore(t)

	wrapped := Wrap(s, "shared", func(args ...any) (string, error) {
		return "from wrap", nil
	})
	got, err := wrapped.Invoke()
	assert.NoError(t, err)
	assert.Equal(t, "from wrap", got)

	// The same key resolves through GetOrCompute without recomputing.
	direct, err := GetOrCompute(s, "shared", func() (string, error) {
		return "never", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "from wrap", direct)
}

func TestWrapPropagatesErrors(t *testing.T) {
	s := newTestStore(t)

	boom := errors.New("boom")
	wrapped := Wrap(s, "wrap_fail", func(args ...any) (int, error) {
		return 0, boom
	})

	_, err := wrapped.Invoke(1, 2, 3)
	assert.ErrorIs(t, err, boom)
	assert.False(t, s.Has("wrap_fail"))
}
