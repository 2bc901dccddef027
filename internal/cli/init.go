// Package cli provides common initialization for the binaries: env file
// loading, logging, configuration, and storage setup.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"navexa/internal/config"
	"navexa/internal/log"
	"navexa/internal/storage"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging at the given level and sets
// it as the default logger.
func SetupLogger(level string) *log.Logger {
	logger := log.New(log.Config{
		Level:     log.ParseLevel(level),
		Component: log.ComponentApp,
	})
	log.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// InitStorage opens the SQLite blob store at the given path.
// Returns the store or exits the process on failure.
func InitStorage(logger *log.Logger, dbPath string) *storage.SQLiteStore {
	blobs, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		logger.Error("Failed to initialize storage", log.FieldError, err, "path", dbPath)
		os.Exit(1)
	}
	return blobs
}
