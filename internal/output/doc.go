// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output renders command result sets as text tables, JSON or YAML,
// honoring the common --output, --sort, --titles and --color flags.
package output
