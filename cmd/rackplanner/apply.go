package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/braunma/rackplanner/pkg/catalog"
	"github.com/braunma/rackplanner/pkg/history"
	"github.com/braunma/rackplanner/pkg/loader"
	"github.com/braunma/rackplanner/pkg/script"
	"github.com/braunma/rackplanner/pkg/utils"
)

func newApplyCmd() *cobra.Command {
	var dryRun, useCatalog bool

	cmd := &cobra.Command{
		Use:   "apply <layout.yaml> <script.yaml>",
		Short: "Replay an edit script against a layout",
		Long: `Replay an edit script against a layout. Every operation goes through the
undo history, so scripts may contain undo and redo steps. Device types missing
from the layout are imported from the brand pack catalog when --catalog is set.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			layoutPath, scriptPath := args[0], args[1]
			dl := loader.NewDataLoader("", logger)

			s, err := openStore(layoutPath)
			if err != nil {
				return err
			}

			ops, err := dl.LoadScript(scriptPath)
			if err != nil {
				logger.Error("Failed to load script", err)
				return err
			}

			var c *catalog.Catalog
			if useCatalog {
				if c, err = loadCatalog(); err != nil {
					logger.Error("Failed to load catalog", err)
					return err
				}
			}

			h := history.New(cfg.HistoryLimit, logger)
			runner := script.NewRunner(s, h, c, logger)

			if err := runner.Run(ops); err != nil {
				logger.Error("Script failed", err)
				printHistory(h)
				return err
			}

			printReport(s.Layout())
			printHistory(h)

			out := cfg.Output
			if out == "" {
				out = layoutPath
			}
			if dryRun {
				logger.DryRun("save", "would write %s", out)
				return nil
			}
			if err := dl.SaveLayout(out, s.Layout()); err != nil {
				logger.Error("Failed to save layout", err)
				return err
			}

			logger.Success("Wrote %s", out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Apply the script without writing the result")
	cmd.Flags().BoolVar(&useCatalog, "catalog", false, "Import missing device types from catalog_dir")
	cmd.Flags().StringP("out", "o", "", "Write the result here instead of over the input layout")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("out"))
	return cmd
}

// printHistory summarises the undo stack. Verbose output lists every entry.
func printHistory(h *history.History) {
	logger.Info("History: %d/%d %s", h.Len(), h.Limit(), utils.Pluralize(h.Len(), "entry", "entries"))
	if !logger.Verbose() {
		return
	}
	for _, cmd := range h.Entries() {
		logger.Debug("  %s %-18s %s", cmd.Timestamp().Format("15:04:05"), cmd.Type(), cmd.Description())
	}
}
