package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-tui/internal/config"
)

const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// Setup configures log from config. An interactive session owns the
// terminal, so console output is dropped and only the log file, if any,
// receives entries.
func Setup(log *logrus.Logger, cfg *config.Config, interactive bool) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if cfg.Development() {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if interactive {
		log.SetOutput(io.Discard)
	}

	if cfg.LogFile == "" {
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Level:      level,
		Formatter: &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", cfg.LogFile, err)
	}
	log.AddHook(hook)

	return nil
}
