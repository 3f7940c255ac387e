// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cachectlgo/internal/meta"
	"github.com/staranto/cachectlgo/internal/store"
)

// PutCommandAction stores a value under a key, creating the entry or
// overwriting it in place. The value comes from the second positional arg,
// or from stdin when the arg is absent.
func PutCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "put") {
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

	var value string
	if cmd.Args().Len() > 1 {
		value = cmd.Args().Get(1)
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read value from stdin: %w", err)
		}
		value = string(data)
	}

	if err := store.Save(s, key, value); err != nil {
		return err
	}

	log.Debugf("stored %s -> %s", key, s.EntryPath(key))
	return nil
}

// PutCommandBuilder constructs the cli.Command for "put".
func PutCommandBuilder(app *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "put",
		Usage:     "store a value under a key",
		UsageText: `cachectl put <key> [value] [options]   (value read from stdin when omitted)`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			NewDirFlag("put"),
			NewFormatFlag("put"),
		}, NewGlobalFlags("put")...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, cmd); err != nil {
				return err
			}
			return PutCommandAction(ctx, cmd)
		},
	}
}
