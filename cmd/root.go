package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the patchmuch application
var rootCmd = &cobra.Command{
	Use:   "patchmuch",
	Short: "Query and render patch series from a notmuch mail archive",
	Long: `patchmuch reconstructs patch-review conversations from a local notmuch
mail index: it finds patch series, walks their threads, and renders them
as plain text for review.

It can run as:
  - An MCP (Model Context Protocol) server for AI assistants (default)
  - A standalone CLI for finding and rendering series`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "patchmuch version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newFindCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
}
