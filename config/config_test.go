package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/on-the-ground/fnkit/config"
	"github.com/on-the-ground/fnkit/shared/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParse_Empty(t *testing.T) {
	for _, raw := range []string{"", "# nothing here\n"} {
		cfg, err := config.Parse([]byte(raw))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	}
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := config.Parse([]byte(`
log:
  level: debug
table:
  name: demo
  num_shards: 8
`))
	require.NoError(t, err)
	assert.Equal(t, log.LogDebug, cfg.Log.Level)
	assert.Equal(t, "demo", cfg.Table.Name)
	assert.Equal(t, 8, cfg.Table.NumShards)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("table:\n  num_shards: 4\n"))
	require.NoError(t, err)
	assert.Equal(t, log.LogInfo, cfg.Log.Level)
	assert.Equal(t, "fnkit", cfg.Table.Name)
	assert.Equal(t, 4, cfg.Table.NumShards)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"negative shards": "table:\n  num_shards: -1\n",
		"too many shards": "table:\n  num_shards: 4096\n",
		"unknown level":   "log:\n  level: loud\n",
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(raw))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.Parse([]byte("tables: {}\n"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fnkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("table:\n  name: fromfile\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fromfile", cfg.Table.Name)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_PureTableConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Table.NumShards = 2

	tc := cfg.PureTableConfig("memoize", zap.NewNop())
	assert.Equal(t, "fnkit.memoize", tc.Name)
	assert.Equal(t, 2, tc.NumShards)
	assert.NotNil(t, tc.Logger)

	assert.Equal(t, "fnkit", cfg.PureTableConfig("", nil).Name)
}

func TestConfig_Logger(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = log.LogWarn

	logger, err := cfg.Logger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
}
