// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cachectlgo/internal/meta"
)

// HasCommandAction reports whether an entry exists for the key. Prints
// true/false and exits nonzero on a miss so shell callers can branch on it.
func HasCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "has") {
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

	if !s.Has(key) {
		fmt.Println("false")
		return cli.Exit("", 1)
	}

	fmt.Println("true")
	return nil
}

// HasCommandBuilder constructs the cli.Command for "has".
func HasCommandBuilder(app *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "has",
		Usage:     "check whether a key has a cache entry",
		UsageText: `cachectl has <key> [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			NewDirFlag("has"),
		}, NewGlobalFlags("has")...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, cmd); err != nil {
				return err
			}
			return HasCommandAction(ctx, cmd)
		},
	}
}
