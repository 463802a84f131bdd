package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/braunma/rackplanner/internal/config"
	"github.com/braunma/rackplanner/pkg/utils"
)

var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *utils.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rackplanner",
		Short: "Rack layout planner",
		Long: `Plan rack layouts as YAML: place devices, check collisions and airflow,
and replay edit scripts with full undo/redo.`,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: rackplanner.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug output")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(
		newNewCmd(),
		newValidateCmd(),
		newCheckCmd(),
		newApplyCmd(),
		newCatalogCmd(),
	)
	return rootCmd
}

func loadConfig(cmd *cobra.Command, args []string) error {
	if err := config.Init(cfgFile); err != nil {
		return err
	}

	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	logger = utils.NewLogger(cfg.Verbose)
	logger.Debug("Config: history_limit=%d catalog_dir=%s", cfg.HistoryLimit, cfg.CatalogDir)
	return nil
}
