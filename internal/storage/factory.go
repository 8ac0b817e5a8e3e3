package storage

import (
	"fmt"
	"log/slog"

	"finbook/internal/config"
)

// Open creates the UserStore selected by the configuration.
func Open(cfg *config.Config, logger *slog.Logger) (UserStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.DataBackend {
	case "json":
		store, err := NewJSONStore(cfg.JSONPath)
		if err != nil {
			return nil, fmt.Errorf("initialize JSON store: %w", err)
		}
		logger.Info("Initialized JSON backend", "path", cfg.JSONPath)
		return store, nil
	case "sqlite":
		store, err := NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize SQLite store: %w", err)
		}
		logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported data backend: %s", cfg.DataBackend)
	}
}
