package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proofpad/config"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
		assert.Equal(t, config.DefaultTickIntervalMS, cfg.TickIntervalMS)
	})

	t.Run("file values layer over defaults", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"provider: deepseek\nmodel: deepseek-v3.2\ntick_interval_ms: 35\n"), 0o600))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "deepseek", cfg.Provider)
		assert.Equal(t, "deepseek-v3.2", cfg.Model)
		assert.Equal(t, 35, cfg.TickIntervalMS)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("provider: [unclosed"), 0o600))
		_, err := config.Load(path)
		assert.Error(t, err)
	})

	t.Run("non-positive tick interval falls back", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tick_interval_ms: -5\n"), 0o600))
		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultTickIntervalMS, cfg.TickIntervalMS)
	})
}
