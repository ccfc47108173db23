package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/fieldcheck/pkg/environment"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

// Mode selects how many violations a validation run reports.
type Mode string

const (
	// ModeFirst stops at the first failed rule.
	ModeFirst Mode = "first"
	// ModeAll collects every failed rule.
	ModeAll Mode = "all"
)

// Config holds the settings of a fieldcheck host.
type Config struct {
	Env         environment.Environment `env:"APP_ENV" envDefault:"development"`
	ServiceName string                  `env:"SERVICE_NAME" envDefault:"fieldcheck"`
	// LogLevel overrides the environment's default level when set.
	LogLevel  string        `env:"LOG_LEVEL"`
	LogFormat logger.Format `env:"LOG_FORMAT"`
	Mode      Mode          `env:"VALIDATION_MODE" envDefault:"first"`
}

// Load reads configuration from the process environment after loading the
// given .env files. Without files the default .env is loaded if it exists.
// Variables already set in the environment take precedence over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		// The default .env file is optional.
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, errors.Join(ErrLoadingEnvFile, err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad(files ...string) Config {
	cfg, err := Load(files...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeFirst, ModeAll:
	default:
		return fmt.Errorf("%w: validation mode %q", ErrInvalidConfig, c.Mode)
	}
	switch c.LogFormat {
	case "", logger.FormatJSON, logger.FormatText:
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.LogFormat)
	}
	if _, _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level. ok is false when LogLevel is unset.
func (c Config) Level() (level slog.Level, ok bool, err error) {
	if c.LogLevel == "" {
		return 0, false, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, false, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return level, true, nil
}

// LoggerOptions translates the configuration into logger options.
func (c Config) LoggerOptions() []logger.Option {
	opts := []logger.Option{logger.WithEnvironment(c.Env, c.ServiceName)}
	if level, ok, err := c.Level(); err == nil && ok {
		opts = append(opts, logger.WithLevel(level))
	}
	if c.LogFormat != "" {
		opts = append(opts, logger.WithFormat(c.LogFormat))
	}
	return opts
}
