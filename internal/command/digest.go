// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cachectlgo/internal/meta"
	"github.com/staranto/cachectlgo/internal/store"
)

// DigestCommandAction prints the 64-character SHA-256 digest for a key, and
// with --path the full entry path it maps to. Pure; touches no files.
func DigestCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "digest") {
		return nil
	}

	key, err := KeyArg(cmd)
	if err != nil {
		return err
	}

	if cmd.Bool("path") {
		fmt.Println(filepath.Join(cmd.String("dir"), store.Digest(key)+store.EntrySuffix))
		return nil
	}

	fmt.Println(store.Digest(key))
	return nil
}

// DigestCommandBuilder constructs the cli.Command for "digest", wiring
// metadata, flags, and action/validator handlers.
func DigestCommandBuilder(app *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "digest",
		Usage:     "print the digest a key maps to",
		UsageText: `cachectl digest <key> [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:        "path",
				Usage:       "print the full entry path instead of the bare digest",
				HideDefault: true,
			},
			NewDirFlag("digest"),
		}, NewGlobalFlags("digest")...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, cmd); err != nil {
				return err
			}
			return DigestCommandAction(ctx, cmd)
		},
	}
}
