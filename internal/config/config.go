package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/braunma/rackplanner/internal/constants"
)

type Config struct {
	HistoryLimit      int    `mapstructure:"history_limit"`
	DefaultRackHeight int    `mapstructure:"default_rack_height"`
	CatalogDir        string `mapstructure:"catalog_dir"`
	Verbose           bool   `mapstructure:"verbose"`
	Output            string `mapstructure:"output"`
}

// Init points viper at the config file and environment. An empty cfgFile looks for
// rackplanner.yml in the working directory. A missing file is not an error.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(constants.ConfigFileName)
		viper.SetConfigType("yml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	for _, key := range []string{"history_limit", "default_rack_height", "catalog_dir", "verbose", "output"} {
		_ = viper.BindEnv(key)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func Load() (*Config, error) {
	cfg := &Config{
		HistoryLimit:      constants.DefaultHistoryLimit,
		DefaultRackHeight: constants.DefaultRackHeight,
		CatalogDir:        "brand-packs",
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if cfg.HistoryLimit < 1 {
		return nil, fmt.Errorf("history_limit must be at least 1, got %d", cfg.HistoryLimit)
	}
	if cfg.DefaultRackHeight < constants.MinRackHeight || cfg.DefaultRackHeight > constants.MaxRackHeight {
		return nil, fmt.Errorf("default_rack_height must be between %d and %d, got %d",
			constants.MinRackHeight, constants.MaxRackHeight, cfg.DefaultRackHeight)
	}

	return cfg, nil
}
