// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/staranto/cachectlgo/internal/meta"
	"github.com/urfave/cli/v3"
)

const bashCompletionScript = `# bash completion for cachectl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_cachectl()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "digest get has ls put rm selftest completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--color -c --output -o --sort -s --titles -t --tldr"

    case "$cmd" in
        digest)
            local opts="$common --dir -d --path"
            ;;
        get)
            local opts="$common --dir -d --format -F --query -q"
            ;;
        has)
            local opts="$common --dir -d"
            ;;
        ls)
            local opts="$common --dir -d --bytes --full"
            ;;
        put)
            local opts="$common --dir -d --format -F"
            ;;
        rm)
            local opts="$common --dir -d"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--format" || "$prev" == "-F" ]]; then
        COMPREPLY=( $(compgen -W "json gob yaml" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--dir" || "$prev" == "-d" ]]; then
        COMPREPLY=( $(compgen -o dirnames -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _cachectl cachectl
`

const zshCompletionScript = `#compdef cachectl

_cachectl() {
  local -a cmds
  cmds=(
    'digest:print the digest a key maps to'
    'get:load and print a cached value'
    'has:check whether a key has a cache entry'
    'ls:list cache entries'
    'put:store a value under a key'
    'rm:remove a cache entry'
    'selftest:exercise every cache operation'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
    '(-c --color)'{-c,--color}'[enable colored text output]'
    '(-o --output)'{-o,--output}'[output format]:output:(text json raw yaml)'
    '(-s --sort)'{-s,--sort}'[sort spec]:spec'
    '(-t --titles)'{-t,--titles}'[include column titles]'
    '(-d --dir)'{-d,--dir}'[cache directory]:dir:_directories'
    '(-F --format)'{-F,--format}'[serialization format]:format:(json gob yaml)'
  )

  if (( CURRENT == 2 )); then
    _describe 'command' cmds
    return
  fi

  _arguments $common
}

_cachectl "$@"
`

// CompletionCommandAction emits the requested shell completion script.
func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := strings.ToLower(cmd.Args().First())
	switch shell {
	case "", "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		return fmt.Errorf("unsupported shell %q (must be bash or zsh)", shell)
	}
	return nil
}

// CompletionCommandBuilder constructs the cli.Command for "completion".
func CompletionCommandBuilder(app *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: `cachectl completion [bash|zsh]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
