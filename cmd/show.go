package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"patchmuch/internal/archive"
)

func newShowCmd() *cobra.Command {
	var (
		configPath  string
		patchesOnly bool
	)

	cmd := &cobra.Command{
		Use:   "show <thread-id>...",
		Short: "Render mail threads as text",
		Long: `Render one or more threads from the notmuch index, one block per
message with headers, tags and body. Thread IDs come from "patchmuch find".

With --patches-only, review discussion is dropped and only the cover
letter and the patches of the series are rendered.`,
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

			mode := archive.ModeAll
			if patchesOnly {
				mode = archive.ModePatchesAndCover
			}

			walker := archive.NewWalker(store, nil)
			for _, threadID := range args {
				entries := walker.RetrieveThread(cmd.Context(), threadID, mode)
				fmt.Println(archive.Render(entries))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.config/patchmuch/config.toml)")
	cmd.Flags().BoolVar(&patchesOnly, "patches-only", false, "Only render the cover letter and the patches of the series")

	return cmd
}
