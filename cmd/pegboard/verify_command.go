package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pegboard/internal/closure"
)

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "verify [platform|all]",
		Short: "Check that every metadata file survives a canonical round trip",
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

			// One file failing the check never stops the batch; every
			// platform gets verified and counted.
			passed, failed := 0, 0
			reports := make([]closure.Report, 0, len(platforms))
			for _, platform := range platforms {
				report, err := closure.Verify(platform.MetadataPath, log)
				if err != nil {
					return fmt.Errorf("verify %s: %w", platform.Key, err)
				}
				reports = append(reports, report)
				if report.Match {
					passed++
					continue
				}
				failed++
				fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s\n", platform.Key)
				if report.HeaderDiff != "" {
					fmt.Fprintln(cmd.OutOrStdout(), report.HeaderDiff)
				}
				if report.GameDiff != "" {
					fmt.Fprintln(cmd.OutOrStdout(), report.GameDiff)
				}
			}

			if jsonOutput {
				return writeJSON(cmd, reports)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "verified %d platforms: %d passed, %d failed\n",
				len(reports), passed, failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d platforms failed the round-trip check", failed, len(reports))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON reports instead of a summary")
	return cmd
}
