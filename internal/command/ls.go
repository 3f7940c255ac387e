// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cachectlgo/internal/config"
	"github.com/staranto/cachectlgo/internal/meta"
	"github.com/staranto/cachectlgo/internal/output"
	"github.com/staranto/cachectlgo/internal/store"
)

// LsCommandAction lists the entries in the cache directory. There is no
// manifest to consult; the directory listing itself is the index. Digests
// cannot be reversed back into keys, so that's what gets listed.
func LsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "ls") {
		return nil
	}

	config.Config.Namespace = "ls"

	s, err := OpenStore(cmd)
	if err != nil {
		return err
	}

	dataset, err := buildLsDataset(s.Dir(), cmd.Bool("bytes"))
	if err != nil {
		return err
	}

	columns := []string{"digest", "size", "age"}
	if cmd.Bool("full") {
		columns = append(columns, "path")
	}

	output.Spit(dataset, columns, cmd, os.Stdout)
	return nil
}

// buildLsDataset walks the flat cache directory and produces one row per
// entry file. Files without the entry suffix (and subdirectories, which the
// store never creates) are skipped.
func buildLsDataset(dir string, rawBytes bool) ([]map[string]interface{}, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	//nolint:prealloc
	var dataset []map[string]interface{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), store.EntrySuffix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			log.Debugf("skipping %s: %v", entry.Name(), err)
			continue
		}

		size := any(humanize.Bytes(uint64(info.Size())))
		if rawBytes {
			size = info.Size()
		}

		dataset = append(dataset, map[string]interface{}{
			"digest": strings.TrimSuffix(entry.Name(), store.EntrySuffix),
			"size":   size,
			"age":    humanize.Time(info.ModTime()),
			"path":   filepath.Join(dir, entry.Name()),
		})
	}

	return dataset, nil
}

// LsCommandBuilder constructs the cli.Command for "ls".
func LsCommandBuilder(app *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     "list cache entries",
		UsageText: `cachectl ls [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:        "bytes",
				Usage:       "report sizes as exact byte counts",
				HideDefault: true,
			},
			&cli.BoolFlag{
				Name:        "full",
				Usage:       "include the entry file path column",
				HideDefault: true,
			},
			NewDirFlag("ls"),
		}, NewGlobalFlags("ls")...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, cmd); err != nil {
				return err
			}
			return LsCommandAction(ctx, cmd)
		},
	}
}
