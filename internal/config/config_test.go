package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/mnemosss/internal/config"
)

func TestLoadSave_RoundTrip(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	cfg := config.Defaults()
	cfg.Split.DefaultThreshold = 4
	cfg.Split.DefaultShares = 7
	cfg.Output.Verbose = true

	require.NoError(t, config.Save(cfg, path))

	_, err := os.Stat(path)
	require.NoError(t, err)

	loaded, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Version, loaded.Version)
	assert.Equal(t, cfg.Split.DefaultThreshold, loaded.Split.DefaultThreshold)
	assert.Equal(t, cfg.Split.DefaultShares, loaded.Split.DefaultShares)
	assert.Equal(t, cfg.Output.Verbose, loaded.Output.Verbose)
}

func TestDefaults(t *testing.T) {
	t.Parallel()
	cfg := config.Defaults()

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "~/.mnemosss", cfg.Home)
	assert.Equal(t, 3, cfg.Split.DefaultThreshold)
	assert.Equal(t, 5, cfg.Split.DefaultShares)
	assert.False(t, cfg.Split.Long)
	assert.Equal(t, "auto", cfg.Output.DefaultFormat)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestPath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, filepath.Join("/home/user/.mnemosss", "config.yaml"), config.Path("/home/user/.mnemosss"))
}

func TestConfigAccessors(t *testing.T) {
	t.Parallel()
	cfg := config.Defaults()
	cfg.Home = "/tmp/home"
	cfg.Logging.Level = "debug"
	cfg.Logging.File = "/tmp/x.log"
	cfg.Output.DefaultFormat = "json"
	cfg.Output.Verbose = true

	assert.Equal(t, "/tmp/home", cfg.GetHome())
	assert.Equal(t, "debug", cfg.GetLoggingLevel())
	assert.Equal(t, "/tmp/x.log", cfg.GetLoggingFile())
	assert.Equal(t, "json", cfg.GetOutputFormat())
	assert.True(t, cfg.IsVerbose())
}

func TestDefaultHome(t *testing.T) {
	t.Parallel()
	home := config.DefaultHome()
	assert.Contains(t, home, ".mnemosss")
}
