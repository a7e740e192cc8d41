// Package cli is the presentation shell: a cobra command tree over the
// Logbook service. No business logic lives here.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"

	"worklog/internal/config"
	"worklog/internal/log"
	"worklog/internal/storage"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging at the given level and sets it
// as the default logger.
func SetupLogger(level slog.Level) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = level
	logger := log.New(cfg)
	log.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration and validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// OpenStorage opens the local database and runs migrations.
func OpenStorage(logger *log.Logger, dbPath string) (*storage.Repository, error) {
	repo, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage at %s: %w", dbPath, err)
	}
	logger.Debug("storage ready", log.FieldPath, dbPath)
	return repo, nil
}
