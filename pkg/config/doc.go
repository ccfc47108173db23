// Package config loads the settings of a fieldcheck host from the
// environment.
//
// It wraps `github.com/joho/godotenv` to read optional `.env` files and
// `github.com/caarlos0/env/v11` to parse variables into Config:
//
//	APP_ENV          development | staging | production (default development)
//	SERVICE_NAME     service attribute on log records (default fieldcheck)
//	LOG_LEVEL        debug | info | warn | error, overrides the environment default
//	LOG_FORMAT       json | text, overrides the environment default
//	VALIDATION_MODE  first | all (default first)
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	log := logger.New(cfg.LoggerOptions()...)
//
// Unsupported values are reported as ErrInvalidConfig.
package config
