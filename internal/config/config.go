package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Mode         string        `yaml:"mode" env:"MINES_MODE" env-default:"production"`
	LogLevel     string        `yaml:"log-level" env:"MINES_LOG_LEVEL" env-default:"info"`
	LogFile      string        `yaml:"log-file" env:"MINES_LOG_FILE"`
	PollInterval time.Duration `yaml:"poll-interval" env:"MINES_POLL_INTERVAL" env-default:"50ms"`
	Seed         uint64        `yaml:"seed" env:"MINES_SEED" env-default:"0"`
}

// Load reads the config file at path, if any, and applies environment
// variables on top of it.
func Load(path string) (*Config, error) {
	config := &Config{}
	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to read config %s: %w", path, err)
	}
	if config.PollInterval <= 0 {
		return nil, fmt.Errorf("invalid poll interval %s", config.PollInterval)
	}
	return config, nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":          c.Mode,
		"log_level":     c.LogLevel,
		"log_file":      c.LogFile,
		"poll_interval": c.PollInterval.String(),
		"seed":          c.Seed,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}
