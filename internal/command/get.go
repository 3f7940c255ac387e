// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
	yamlv2 "gopkg.in/yaml.v2"

	"github.com/staranto/cachectlgo/internal/meta"
	"github.com/staranto/cachectlgo/internal/store"
)

// GetCommandAction loads the entry for a key and emits it. The CLI caches
// text payloads (see put), so the value decodes as a string; --output raw
// dumps the on-disk bytes without decoding and --query drills into JSON
// payloads with a gjson path.
func GetCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "get") {
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

	// If raw, just dump it and go home.
	if cmd.String("output") == "raw" {
		data, err := s.ReadRaw(key)
		if err != nil {
			return err
		}
		_, _ = os.Stdout.Write(data)
		return nil
	}

	value, err := store.Load[string](s, key)
	if err != nil {
		return err
	}

	if q := cmd.String("query"); q != "" {
		result := gjson.Get(value, q)
		if !result.Exists() {
			return fmt.Errorf("query %q matched nothing in entry %s", q, store.Digest(key))
		}
		fmt.Println(result.String())
		return nil
	}

	switch cmd.String("output") {
	case "json":
		out, err := json.Marshal(value)
		if err != nil {
			return err
		}
		_, _ = os.Stdout.Write(out)
		fmt.Println()
	case "yaml":
		out, err := yamlv2.Marshal(value)
		if err != nil {
			return err
		}
		_, _ = os.Stdout.Write(out)
	default:
		fmt.Println(value)
	}

	return nil
}

// GetCommandBuilder constructs the cli.Command for "get".
func GetCommandBuilder(app *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "load and print a cached value",
		UsageText: `cachectl get <key> [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "gjson path applied to JSON payloads",
			},
			NewDirFlag("get"),
			NewFormatFlag("get"),
		}, NewGlobalFlags("get")...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, cmd); err != nil {
				return err
			}
			return GetCommandAction(ctx, cmd)
		},
	}
}
