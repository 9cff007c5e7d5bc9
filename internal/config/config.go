package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"gorm.io/gorm/logger"

	"notesbot/internal/database"
	"notesbot/internal/logging"
	"notesbot/internal/utils"
)

// Config is the process configuration, read from NOTESBOT_* variables.
type Config struct {
	DBPath      string `env:"DB_PATH"`
	LogFile     string `env:"LOG_FILE" envDefault:"bot.log"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogStderr   bool   `env:"LOG_STDERR" envDefault:"false"`
	LogMaxSize  int    `env:"LOG_MAX_SIZE_MB" envDefault:"10"`
	LogMaxFiles int    `env:"LOG_MAX_FILES" envDefault:"5"`
	SQLLogLevel string `env:"SQL_LOG_LEVEL" envDefault:"warn"`
}

const envPrefix = "NOTESBOT_"

// Load reads an optional .env file, then the environment.
func Load() (Config, error) {
	if err := utils.LoadEnv(); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads the environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = database.DefaultPath()
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	if _, err := cfg.GormLogLevel(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Logging() logging.Config {
	return logging.Config{
		File:      c.LogFile,
		MaxSizeMB: c.LogMaxSize,
		MaxFiles:  c.LogMaxFiles,
		Level:     c.LogLevel,
		Stderr:    c.LogStderr,
	}
}

// GormLogLevel maps SQLLogLevel to the gorm logger level.
func (c Config) GormLogLevel() (logger.LogLevel, error) {
	switch strings.ToLower(c.SQLLogLevel) {
	case "silent":
		return logger.Silent, nil
	case "error":
		return logger.Error, nil
	case "", "warn":
		return logger.Warn, nil
	case "info":
		return logger.Info, nil
	default:
		return 0, fmt.Errorf("unknown sql log level %q", c.SQLLogLevel)
	}
}
