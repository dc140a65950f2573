package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/rgex/internal/config"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rgex.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	cfg, err := config.Load(write(t, "output:\n  dir: out\nlogging:\n  level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, "running.py", cfg.Output.File, "unset fields keep their default")
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_Invalid(t *testing.T) {
	for name, body := range map[string]string{
		"level":  "logging:\n  level: loud\n",
		"file":   "output:\n  file: a/b.py\n",
		"syntax": "output: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(write(t, body))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestZapConfig(t *testing.T) {
	cfg := config.Default()

	zc, err := cfg.ZapConfig(false)
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, zc.Level.Level())
	assert.False(t, zc.Development)

	zc, err = cfg.ZapConfig(true)
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, zc.Level.Level())

	cfg.Logging.Development = true
	cfg.Logging.Level = "warn"
	zc, err = cfg.ZapConfig(false)
	require.NoError(t, err)
	assert.True(t, zc.Development)
	assert.Equal(t, zapcore.WarnLevel, zc.Level.Level())
}
