// Package cli provides common initialization for the finbook binary:
// environment loading, logging setup, configuration, and the storage and
// alert-publisher wiring derived from it.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"finbook/internal/amqp"
	"finbook/internal/config"
	applog "finbook/internal/log"
	"finbook/internal/storage"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging at the given level and sets it
// as the process default.
func SetupLogger(level string) *applog.Logger {
	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(level),
		Component: applog.ComponentApp,
	})
	applog.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// OpenStore opens the configured persistence backend.
// Returns the store or exits the process on failure.
func OpenStore(logger *applog.Logger, cfg *config.Config) storage.UserStore {
	store, err := storage.Open(cfg, slog.Default())
	if err != nil {
		logger.Error("Failed to initialize storage", applog.FieldError, err, applog.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	return store
}

// OpenAlertPublisher connects the optional AMQP alert publisher. A missing
// URL or a failed connection disables alert forwarding without stopping the
// application.
func OpenAlertPublisher(logger *applog.Logger, cfg *config.Config) *amqp.Client {
	if cfg.AMQPURL == "" {
		return nil
	}
	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Warn("Failed to connect alert publisher, continuing without it", applog.FieldError, err)
		return nil
	}
	logger.Info("Connected alert publisher",
		"exchange", cfg.AMQPExchange,
		"queue", cfg.AMQPQueue)
	return client
}
