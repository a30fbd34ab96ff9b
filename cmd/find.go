package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"patchmuch/internal/archive"
)

func newFindCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "find <filter>...",
		Short: "Find patch series in the mail archive",
		Long: `Search the notmuch index for patch series matching a filter and print
one line per series: thread ID and subject, tab-separated.

The filter uses notmuch search syntax, e.g.:

  patchmuch find from:jane@example.com
  patchmuch find tag:patches and date:2024-05-01..`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			series, err := archive.FindSeries(cmd.Context(), store, strings.Join(args, " "))
			if err != nil {
				return err
			}

			for _, s := range series {
				fmt.Printf("%s\t%s\n", s.ThreadID, s.Subject)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.config/patchmuch/config.toml)")

	return cmd
}
