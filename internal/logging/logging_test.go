package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-tui/internal/config"
)

func TestSetupLevel(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.Config
		level logrus.Level
	}{
		{
			name:  "production info",
			cfg:   config.Config{Mode: "production", LogLevel: "info"},
			level: logrus.InfoLevel,
		},
		{
			name:  "production warn",
			cfg:   config.Config{Mode: "production", LogLevel: "warn"},
			level: logrus.WarnLevel,
		},
		{
			name:  "development forces debug",
			cfg:   config.Config{Mode: "development", LogLevel: "error"},
			level: logrus.DebugLevel,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			log := logrus.New()
			require.NoError(t, Setup(log, &test.cfg, false))
			assert.Equal(t, test.level, log.GetLevel())
		})
	}
}

func TestSetupInvalidLevel(t *testing.T) {
	log := logrus.New()
	err := Setup(log, &config.Config{Mode: "production", LogLevel: "loud"}, false)
	assert.Error(t, err)
}

func TestSetupInteractiveDiscardsConsole(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)

	require.NoError(t, Setup(log, &config.Config{Mode: "production", LogLevel: "info"}, true))
	log.Info("hidden")

	assert.Zero(t, buf.Len())
}

func TestSetupLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minesweeper.log")
	log := logrus.New()
	cfg := &config.Config{
		Mode:         "production",
		LogLevel:     "info",
		LogFile:      path,
		PollInterval: time.Millisecond,
	}

	require.NoError(t, Setup(log, cfg, true))
	log.WithField("session", "abc").Info("mines placed")
	log.Debug("below level")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"mines placed"`)
	assert.Contains(t, string(data), `"session":"abc"`)
	assert.NotContains(t, string(data), "below level")
}
