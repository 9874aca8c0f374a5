package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pegboard/internal/corepolicy"
	"pegboard/internal/jsondb"
)

func newDescriptionsCommand(ctx *commandContext) *cobra.Command {
	descriptionsCmd := &cobra.Command{
		Use:   "descriptions",
		Short: "Description exchange utilities",
	}

	descriptionsCmd.AddCommand(newDescriptionsExportCommand(ctx))
	descriptionsCmd.AddCommand(newDescriptionsApplyCommand(ctx))

	return descriptionsCmd
}

func newDescriptionsExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export every game to the raw descriptions JSONL file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			platforms, err := jsondb.LoadAll(cfg.Paths.JSONDBDir)
			if err != nil {
				return err
			}
			count, err := jsondb.ExportDescriptions(platforms, corepolicy.New(cfg), cfg.Descriptions.RawPath)
			if err != nil {
				return fmt.Errorf("export descriptions: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d records to %s\n", count, cfg.Descriptions.RawPath)
			return nil
		},
	}
}

func newDescriptionsApplyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Apply description patch files back into the JSON database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			applied, skipped, err := jsondb.ApplyDescriptions(cfg.Paths.JSONDBDir, cfg.Descriptions.PatchDir)
			if err != nil {
				return fmt.Errorf("apply descriptions: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d descriptions, skipped %d\n", applied, skipped)
			return nil
		},
	}
}
