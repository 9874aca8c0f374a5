package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pegboard/internal/metadata"
)

type platformListing struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Games int    `json:"games"`
	Path  string `json:"path"`
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered platforms and their game counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			platforms, err := resolvePlatforms(cfg.Paths.ResourceRoot, "all")
			if err != nil {
				return err
			}

			listings := make([]platformListing, 0, len(platforms))
			for _, platform := range platforms {
				_, games, err := metadata.ParseFile(platform.MetadataPath)
				if err != nil {
					return fmt.Errorf("parse %s: %w", platform.Name, err)
				}
				listings = append(listings, platformListing{
					Key:   platform.Key,
					Name:  platform.Name,
					Games: len(games),
					Path:  platform.MetadataPath,
				})
			}

			if jsonOutput {
				return writeJSON(cmd, listings)
			}

			rows := make([][]string, 0, len(listings))
			for _, listing := range listings {
				rows = append(rows, []string{
					listing.Key,
					listing.Name,
					strconv.Itoa(listing.Games),
					listing.Path,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Key", "Platform", "Games", "Metadata"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}
