// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/urfave/cli/v3"

	"github.com/staranto/cachectlgo/internal/meta"
	"github.com/staranto/cachectlgo/internal/store"
)

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr cachectl <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "cachectl", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// OpenStore resolves --dir and --format and constructs the Store. The
// directory must exist; callers get the store's configuration error verbatim
// so the four-kind taxonomy stays visible at the CLI surface.
func OpenStore(cmd *cli.Command) (*store.Store, error) {
	if err := FlagValidators(cmd.String("format"), FormatValidator); err != nil {
		return nil, fmt.Errorf("--format %w", err)
	}

	codec, err := store.CodecForName(cmd.String("format"))
	if err != nil {
		return nil, err
	}

	dir := cmd.String("dir")
	if dir == "" {
		return nil, errors.New("no cache directory: set --dir, CACHECTL_DIR, or the dir config key")
	}

	return store.New(dir, store.WithCodec(codec))
}

// KeyArg returns the required key positional or an error the CLI can print.
func KeyArg(cmd *cli.Command) (string, error) {
	key := cmd.Args().First()
	if key == "" {
		return "", errors.New("key argument required")
	}
	return key, nil
}
