package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pegboard/internal/jsondb"
	"pegboard/internal/textutil"
)

func newRestoreCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <platform>",
		Short: "Rebuild a canonical metadata file from the JSON database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			key := textutil.Slug(args[0])
			payload, err := jsondb.Load(jsondb.PathFor(cfg.Paths.JSONDBDir, key))
			if err != nil {
				return fmt.Errorf("load payload for %q: %w", key, err)
			}

			path, err := jsondb.Restore(payload, cfg.Paths.CanonicalDir)
			if err != nil {
				return fmt.Errorf("restore %s: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "restored %s (%d games) to %s\n",
				key, len(payload.Games), path)
			return nil
		},
	}
}
