package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pegboard/internal/config"
	"pegboard/internal/corepolicy"
	"pegboard/internal/frontends"
	"pegboard/internal/jsondb"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <daijisho|esde|retroarch> [platform|all]",
		Short: "Convert JSON database payloads to a frontend's format",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			frontend := args[0]
			platforms, err := resolvePlatforms(cfg.Paths.ResourceRoot, platformArg(args[1:]))
			if err != nil {
				return err
			}

			for _, platform := range platforms {
				payload, err := jsondb.Load(jsondb.PathFor(cfg.Paths.JSONDBDir, platform.Key))
				if err != nil {
					return fmt.Errorf("load payload for %q: %w", platform.Key, err)
				}
				if err := convertPayload(cmd, cfg, frontend, payload); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func convertPayload(cmd *cobra.Command, cfg *config.Config, frontend string, payload jsondb.Platform) error {
	switch frontend {
	case "daijisho":
		path, err := frontends.WriteDaijisho(payload, cfg.Paths.FrontendDir)
		if err != nil {
			return fmt.Errorf("convert %s: %w", payload.Key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", payload.Key, path)
	case "esde":
		path, err := frontends.WriteESDE(payload, cfg.Paths.FrontendDir)
		if err != nil {
			return fmt.Errorf("convert %s: %w", payload.Key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", payload.Key, path)
	case "retroarch":
		written, err := frontends.WriteRetroArch(payload, corepolicy.New(cfg), cfg.Paths.FrontendDir)
		if err != nil {
			return fmt.Errorf("convert %s: %w", payload.Key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d core overrides\n", payload.Key, written)
	default:
		return fmt.Errorf("unknown frontend %q (expected daijisho, esde, or retroarch)", frontend)
	}
	return nil
}
