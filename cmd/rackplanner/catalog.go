package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/braunma/rackplanner/pkg/utils"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [query]",
		Short: "List device types from the brand packs in catalog_dir",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog()
			if err != nil {
				logger.Error("Failed to load catalog", err)
				return err
			}

			query := strings.Join(args, " ")
			matches := c.Search(query)
			for _, dt := range matches {
				logger.Info("%-32s %4.1fU  %s", dt.Slug, dt.UHeight, dt.DisplayName())
			}

			logger.Success("%d %s in %d %s", len(matches), utils.Pluralize(len(matches), "device type", "device types"),
				len(c.Packs()), utils.Pluralize(len(c.Packs()), "pack", "packs"))
			return nil
		},
	}
}
