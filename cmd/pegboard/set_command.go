package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pegboard/internal/editor"
	"pegboard/internal/library"
)

func newSetCommand(ctx *commandContext) *cobra.Command {
	var (
		title       string
		sortBy      string
		developer   string
		description string
		launch      string
		addRoms     []string
	)

	cmd := &cobra.Command{
		Use:   "set <platform> <rom>",
		Short: "Update one game's fields in its metadata file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			platform, err := library.Find(cfg.Paths.ResourceRoot, args[0])
			if err != nil {
				return err
			}

			update := editor.Update{
				Rom:     args[1],
				Title:   title,
				AddRoms: addRoms,
			}
			// Only flags the user set are applied; unset flags leave the
			// existing values alone.
			if cmd.Flags().Changed("sort-by") {
				update.SortBy = &sortBy
			}
			if cmd.Flags().Changed("developer") {
				update.Developer = &developer
			}
			if cmd.Flags().Changed("description") {
				update.Description = &description
			}
			if cmd.Flags().Changed("launch") {
				update.Launch = &launch
			}

			created, err := editor.Upsert(cmd.Context(), platform.MetadataPath, update)
			if err != nil {
				return fmt.Errorf("update %s: %w", platform.Key, err)
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "added %q to %s\n", args[1], platform.Key)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "updated %q in %s\n", args[1], platform.Key)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Game title (required when adding a new game)")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "Sort key")
	cmd.Flags().StringVar(&developer, "developer", "", "Developer")
	cmd.Flags().StringVar(&description, "description", "", "Description text")
	cmd.Flags().StringVar(&launch, "launch", "", "Launch command override")
	cmd.Flags().StringArrayVar(&addRoms, "add-rom", nil, "Additional rom path (repeatable)")
	return cmd
}
