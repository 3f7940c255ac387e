// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cachectlgo/internal/meta"
	"github.com/staranto/cachectlgo/internal/store"
)

// digestVectors are known SHA-256 mappings used to verify the hashing
// function.
var digestVectors = map[string]string{
	"cache_manager": "34d7518f35fb588fcc7768ea21389b823f33e8eb8742a34172fcfff5ec388409",
	"test":          "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
	"abc":           "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
}

type selfTest struct {
	name string
	run  func(s *store.Store) error
}

// SelftestCommandAction exercises every store operation against a throwaway
// directory and reports pass/fail per check. Nothing touches the configured
// cache directory.
func SelftestCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "selftest") {
		return nil
	}

	dir, err := os.MkdirTemp("", "cachectl-selftest-")
	if err != nil {
		return fmt.Errorf("failed to create selftest directory: %w", err)
	}
	defer os.RemoveAll(dir)

	s, err := store.New(dir)
	if err != nil {
		return err
	}

	fmt.Println("Running selftest...")

	failed := 0
	for _, st := range selfTests() {
		if err := st.run(s); err != nil {
			failed++
			fmt.Printf("FAIL %-24s %v\n", st.name, err)
			continue
		}
		fmt.Printf("ok   %s\n", st.name)
	}

	if failed > 0 {
		return fmt.Errorf("%d selftest check(s) failed", failed)
	}
	fmt.Println("Done. All checks passed.")
	return nil
}

func selfTests() []selfTest {
	return []selfTest{
		{name: "digest vectors", run: func(s *store.Store) error {
			for key, want := range digestVectors {
				if got := store.Digest(key); got != want {
					return fmt.Errorf("digest(%q) = %s, want %s", key, got, want)
				}
			}
			return nil
		}},
		{name: "entry path", run: func(s *store.Store) error {
			p := s.EntryPath("test")
			want := digestVectors["test"] + store.EntrySuffix
			if got := p[len(p)-len(want):]; got != want {
				return fmt.Errorf("entry path ends %s, want %s", got, want)
			}
			return nil
		}},
		{name: "existence transitions", run: func(s *store.Store) error {
			for key := range digestVectors {
				if s.Has(key) {
					return fmt.Errorf("expected miss for %q before save", key)
				}
				if err := store.Save(s, key, "a"); err != nil {
					return err
				}
				if !s.Has(key) {
					return fmt.Errorf("expected hit for %q after save", key)
				}
				if err := s.Remove(key); err != nil {
					return err
				}
				if s.Has(key) {
					return fmt.Errorf("expected miss for %q after remove", key)
				}
			}
			return nil
		}},
		{name: "round trip", run: func(s *store.Store) error {
			if err := store.Save(s, "rt", "test"); err != nil {
				return err
			}
			got, err := store.Load[string](s, "rt")
			if err != nil {
				return err
			}
			if got != "test" {
				return fmt.Errorf("loaded %q, want %q", got, "test")
			}
			return s.Remove("rt")
		}},
		{name: "missing key errors", run: func(s *store.Store) error {
			if _, err := store.Load[string](s, "never"); !errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("load: got %v, want ErrNotFound", err)
			}
			if err := s.Remove("never"); !errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("remove: got %v, want ErrNotFound", err)
			}
			return nil
		}},
		{name: "corruption detected", run: func(s *store.Store) error {
			if err := os.WriteFile(s.EntryPath("dented"), []byte("}{"), 0o600); err != nil {
				return err
			}
			defer func() { _ = s.Remove("dented") }()
			if _, err := store.Load[map[string]string](s, "dented"); !errors.Is(err, store.ErrCorrupt) {
				return fmt.Errorf("got %v, want ErrCorrupt", err)
			}
			return nil
		}},
		{name: "get-or-compute", run: func(s *store.Store) error {
			calls := 0
			compute := func() (string, error) {
				calls++
				return "Hello" + " " + "World!", nil
			}
			first, err := store.GetOrCompute(s, "concat", compute)
			if err != nil {
				return err
			}
			second, err := store.GetOrCompute(s, "concat", compute)
			if err != nil {
				return err
			}
			if first != "Hello World!" || second != first {
				return fmt.Errorf("got %q then %q", first, second)
			}
			if calls != 1 {
				return fmt.Errorf("computation ran %d times, want 1", calls)
			}
			return s.Remove("concat")
		}},
		{name: "no caching on failure", run: func(s *store.Store) error {
			boom := errors.New("boom")
			if _, err := store.GetOrCompute(s, "failing", func() (string, error) {
				return "", boom
			}); !errors.Is(err, boom) {
				return fmt.Errorf("got %v, want the compute error", err)
			}
			if s.Has("failing") {
				return errors.New("failed computation populated the entry")
			}
			return nil
		}},
		{name: "wrap identity", run: func(s *store.Store) error {
			calls := 0
			wrapped := store.Wrap(s, "expensive_name", func(args ...any) (string, error) {
				calls++
				out := ""
				for _, a := range args {
					out += fmt.Sprint(a)
				}
				return out, nil
			})
			first, err := wrapped.Invoke("Hello", " ", "World!")
			if err != nil {
				return err
			}
			second, err := wrapped.Invoke("X", "Y", "Z")
			if err != nil {
				return err
			}
			if first != "Hello World!" || second != first {
				return fmt.Errorf("got %q then %q", first, second)
			}
			if calls != 1 {
				return fmt.Errorf("wrapped function ran %d times, want 1", calls)
			}
			return s.Remove("expensive_name")
		}},
	}
}

// SelftestCommandBuilder constructs the cli.Command for "selftest".
func SelftestCommandBuilder(app *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "selftest",
		Usage:     "exercise every cache operation against a throwaway directory",
		UsageText: `cachectl selftest`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{}, NewGlobalFlags("selftest")...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, cmd); err != nil {
				return err
			}
			return SelftestCommandAction(ctx, cmd)
		},
	}
}
