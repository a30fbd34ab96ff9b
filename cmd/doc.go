// Package cmd implements the command-line interface for patchmuch.
//
// This package provides the following commands:
//   - serve: Start the MCP server exposing the mail archive tools
//   - find: Find patch series matching a notmuch filter
//   - show: Render mail threads as text
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
//
// The serve command is the default command when no subcommand is specified.
package cmd
