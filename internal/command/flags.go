// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"
	"os/exec"
	"path/filepath"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cachectlgo/internal/config"
)

func init() {
	cfg, _ = config.Load("")
}

var (
	cfg config.Type

	tldrFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "tldr",
		Usage:       "show tldr page",
		Hidden:      !pathHas("tldr"),
		HideDefault: true,
	}
)

// NewDirFlag builds the --dir flag for a subcommand namespace. Precedence:
// explicit flag, CACHECTL_DIR, namespaced yaml key, global yaml key, then
// the user cache dir default.
func NewDirFlag(ns string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "dir",
		Aliases: []string{"d"},
		Usage:   "cache directory",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CACHECTL_DIR"),
			yaml.YAML(ns+"."+"dir", altsrc.StringSourcer(cfg.Source)),
			yaml.YAML("dir", altsrc.StringSourcer(cfg.Source)),
		),
		Value: DefaultDir(),
	}
}

// NewFormatFlag builds the --format flag selecting the serialization codec.
func NewFormatFlag(ns string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"F"},
		Usage:   "entry serialization format (json, gob, yaml)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CACHECTL_FORMAT"),
			yaml.YAML(ns+"."+"format", altsrc.StringSourcer(cfg.Source)),
			yaml.YAML("format", altsrc.StringSourcer(cfg.Source)),
		),
		Value: "json",
	}
}

// NewGlobalFlags returns the flags shared by every subcommand. params[0] is
// the config namespace for yaml-sourced values.
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"color", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("color", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format (text, json, raw, yaml)",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"output", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("output", altsrc.StringSourcer(cfg.Source)),
			),
			Value: "text",
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated sort spec (-key descends, !key is case-sensitive)",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"sort", altsrc.StringSourcer(cfg.Source)),
			),
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "include column titles in text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"titles", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("titles", altsrc.StringSourcer(cfg.Source)),
			),
			Value: true,
		},
		tldrFlag,
	}
	return flags
}

// DefaultDir resolves the default cache directory: CACHECTL_DIR if set,
// otherwise os.UserCacheDir()/cachectl.
func DefaultDir() string {
	if c, ok := os.LookupEnv("CACHECTL_DIR"); ok && c != "" {
		return c
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "cachectl")
	}
	return ""
}

// pathHas reports whether an executable is available on PATH.
func pathHas(bin string) bool {
	_, err := exec.LookPath(bin)
	return err == nil
}
