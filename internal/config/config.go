// Package config provides runtime configuration values for shopdex.
// Values come from environment variables with sensible defaults; the serve
// entrypoint loads a .env file first when one is present.
package config

import (
	"os"
	"path/filepath"
)

// Config holds the effective paths and addresses.
type Config struct {
	// HTTPAddr is the listen address for the serve command.
	HTTPAddr string
	// DBPath is the bbolt database holding overrides and passkeys.
	DBPath string
	// CataloguePath is the base catalogue JSON file. Empty selects the
	// embedded demo catalogue.
	CataloguePath string
	// Watch enables live catalogue reload on file changes.
	Watch bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// DefaultDBPath is where the override store lives unless overridden.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "shopdex.db"
	}
	return filepath.Join(home, ".shopdex", "shopdex.db")
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		HTTPAddr:      getenv("SHOPDEX_ADDR", ":8080"),
		DBPath:        getenv("SHOPDEX_DB", DefaultDBPath()),
		CataloguePath: getenv("SHOPDEX_CATALOGUE", ""),
		Watch:         getenv("SHOPDEX_WATCH", "") == "1",
	}
}
