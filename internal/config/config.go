package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	// Storage
	DataBackend  string `toml:"data_backend"`
	JSONPath     string `toml:"json_path"`
	SQLiteDBPath string `toml:"sqlite_db_path"`

	// AMQP alert events (optional)
	AMQPURL      string `toml:"amqp_url"`
	AMQPExchange string `toml:"amqp_exchange"`
	AMQPQueue    string `toml:"amqp_queue"`

	// Export
	ExportDir string `toml:"export_dir"`

	// Logging
	LogLevel string `toml:"log_level"`
}

func defaults() *Config {
	return &Config{
		DataBackend:  "json",
		JSONPath:     "./data/users.json",
		SQLiteDBPath: "./data/finbook.db",

		AMQPURL:      "",
		AMQPExchange: "finbook",
		AMQPQueue:    "budget_alerts",

		ExportDir: ".",
		LogLevel:  "info",
	}
}

// Load builds the configuration in three layers: defaults, then an optional
// TOML file (FINBOOK_CONFIG or ./finbook.toml), then environment variables.
// Later layers win.
func Load() *Config {
	cfg := defaults()

	path := os.Getenv("FINBOOK_CONFIG")
	if path == "" {
		path = "finbook.toml"
	}
	if data, err := os.ReadFile(path); err == nil {
		// A broken config file is surfaced by Validate, not here; an
		// unparsable file simply leaves the defaults in place.
		_ = toml.Unmarshal(data, cfg)
	}

	cfg.DataBackend = getEnv("DATA_BACKEND", cfg.DataBackend)
	cfg.JSONPath = getEnv("JSON_PATH", cfg.JSONPath)
	cfg.SQLiteDBPath = getEnv("SQLITE_DB_PATH", cfg.SQLiteDBPath)

	cfg.AMQPURL = getEnv("AMQP_URL", cfg.AMQPURL)
	cfg.AMQPExchange = getEnv("AMQP_EXCHANGE", cfg.AMQPExchange)
	cfg.AMQPQueue = getEnv("AMQP_QUEUE", cfg.AMQPQueue)

	cfg.ExportDir = getEnv("EXPORT_DIR", cfg.ExportDir)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	return cfg
}

// Validate validates the configuration and returns an error listing every
// problem found.
func (c *Config) Validate() error {
	var errors []string

	validBackends := []string{"json", "sqlite"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	switch c.DataBackend {
	case "json":
		if c.JSONPath == "" {
			errors = append(errors, "JSON store path cannot be empty when using json backend")
		} else {
			errors = append(errors, checkDir(c.JSONPath)...)
		}
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			errors = append(errors, checkDir(c.SQLiteDBPath)...)
		}
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// checkDir ensures the parent directory of a data path exists or can be
// created.
func checkDir(path string) []string {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return []string{fmt.Sprintf("cannot create data directory '%s': %v", dir, err)}
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
