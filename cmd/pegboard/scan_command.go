package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pegboard/internal/jsondb"
	"pegboard/internal/library"
	"pegboard/internal/romdb"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var romRoot string

	cmd := &cobra.Command{
		Use:   "scan <platform>",
		Short: "Hash a platform's roms into the rom database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			log, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			platform, err := library.Find(cfg.Paths.ResourceRoot, args[0])
			if err != nil {
				return err
			}
			payload, err := jsondb.Load(jsondb.PathFor(cfg.Paths.JSONDBDir, platform.Key))
			if err != nil {
				return fmt.Errorf("load payload for %q (run `pegboard export %s` first): %w",
					platform.Key, platform.Key, err)
			}

			store, err := romdb.Open(cfg.Paths.RomDBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			root := romRoot
			if root == "" {
				root = platform.Dir
			}
			summary, err := romdb.Scan(cmd.Context(), store, payload, root, log)
			if err != nil {
				return fmt.Errorf("scan %s: %w", platform.Key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d roms, %d found, %d missing\n",
				summary.PlatformKey, summary.Total, summary.Found, summary.Missing)
			return nil
		},
	}

	cmd.Flags().StringVar(&romRoot, "rom-root", "", "Directory rom paths are resolved against (default: the platform directory)")
	return cmd
}
