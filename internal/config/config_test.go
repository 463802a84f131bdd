package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.HistoryLimit)
	assert.Equal(t, 42, cfg.DefaultRackHeight)
	assert.Equal(t, "brand-packs", cfg.CatalogDir)
	assert.False(t, cfg.Verbose)
}

func TestLoadFromFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "rackplanner.yml")
	require.NoError(t, os.WriteFile(path, []byte("history_limit: 5\ncatalog_dir: packs\nverbose: true\n"), 0o644))
	require.NoError(t, Init(path))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.HistoryLimit)
	assert.Equal(t, "packs", cfg.CatalogDir)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 42, cfg.DefaultRackHeight)
}

func TestLoadFromEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("RACKPLANNER_DEFAULT_RACK_HEIGHT", "24")
	require.NoError(t, Init(""))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.DefaultRackHeight)
}

func TestLoadRejectsBadValues(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("history_limit", 0)
	_, err := Load()
	assert.Error(t, err)

	viper.Reset()
	viper.Set("default_rack_height", 500)
	_, err = Load()
	assert.Error(t, err)
}
