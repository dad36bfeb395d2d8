// Package cli implements the slimmer command-line interface.
//
// This package provides commands for estimating how much disk space each
// top-level package is responsible for, inspecting a single package's
// dependency tree, and exporting the dependency graph for visualization.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - blame: Rank root packages by attributed disk usage
//   - tree: Show the dependency tree of one package
//   - graph: Export the dependency graph as DOT or SVG
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging; at debug
// level the blame traversal is traced node by node. Loggers are passed
// through context.Context.
//
// # Configuration
//
// Defaults for flags can be set in ~/.config/slimmer/config.toml; flags
// given on the command line take precedence.
package cli
