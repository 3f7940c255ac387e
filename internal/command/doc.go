// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command wires the cachectl CLI: one builder per subcommand, shared
// global flags with env/yaml value sources, and thin actions that delegate to
// internal/store.
package command
