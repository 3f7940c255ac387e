// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cachectlgo/internal/meta"
)

// RmCommandAction removes the entry for a key. Removing a key with no entry
// is an error, matching the store contract.
func RmCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "rm") {
		return nil
	}

	key, err := KeyArg(cmd)
	if err != nil {
		return err
	}

	s, err := OpenStore(cmd)
	if err != nil {
		return err
	}

	if err := s.Remove(key); err != nil {
		return err
	}

	log.Debugf("removed %s", s.EntryPath(key))
	return nil
}

// RmCommandBuilder constructs the cli.Command for "rm".
func RmCommandBuilder(app *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "remove a cache entry",
		UsageText: `cachectl rm <key> [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			NewDirFlag("rm"),
		}, NewGlobalFlags("rm")...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, cmd); err != nil {
				return err
			}
			return RmCommandAction(ctx, cmd)
		},
	}
}
