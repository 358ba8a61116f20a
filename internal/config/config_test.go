package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	config, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "production", config.Mode)
	assert.Equal(t, "info", config.LogLevel)
	assert.Empty(t, config.LogFile)
	assert.Equal(t, 50*time.Millisecond, config.PollInterval)
	assert.Zero(t, config.Seed)
	assert.True(t, config.Production())
	assert.False(t, config.Development())
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("MINES_MODE", "development")
	t.Setenv("MINES_LOG_LEVEL", "warn")
	t.Setenv("MINES_POLL_INTERVAL", "100ms")
	t.Setenv("MINES_SEED", "42")

	config, err := Load("")
	require.NoError(t, err)

	assert.True(t, config.Development())
	assert.Equal(t, "warn", config.LogLevel)
	assert.Equal(t, 100*time.Millisecond, config.PollInterval)
	assert.Equal(t, uint64(42), config.Seed)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	err := os.WriteFile(path, []byte(
		"mode: development\n"+
			"log-file: /tmp/minesweeper.log\n"+
			"poll-interval: 20ms\n",
	), 0o600)
	require.NoError(t, err)

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "development", config.Mode)
	assert.Equal(t, "/tmp/minesweeper.log", config.LogFile)
	assert.Equal(t, 20*time.Millisecond, config.PollInterval)
	assert.Equal(t, "info", config.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	t.Setenv("MINES_POLL_INTERVAL", "0s")
	_, err = Load("")
	assert.Error(t, err)
}

func TestFields(t *testing.T) {
	config := Config{Mode: "production", PollInterval: time.Second, Seed: 7}
	fields := config.Fields()

	assert.Equal(t, "production", fields["mode"])
	assert.Equal(t, "1s", fields["poll_interval"])
	assert.Equal(t, uint64(7), fields["seed"])
}
