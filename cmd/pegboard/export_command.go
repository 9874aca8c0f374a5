package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pegboard/internal/jsondb"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export [platform|all]",
		Short: "Export platform metadata to the JSON database",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			log, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			platforms, err := resolvePlatforms(cfg.Paths.ResourceRoot, platformArg(args))
			if err != nil {
				return err
			}

			for _, platform := range platforms {
				payload, err := jsondb.Export(platform, cfg.Paths.JSONDBDir)
				if err != nil {
					return fmt.Errorf("export %s: %w", platform.Key, err)
				}
				log.Info("platform exported", "platform", platform.Key, "games", len(payload.Games))
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d games\n", platform.Key, len(payload.Games))
			}
			return nil
		},
	}
}
