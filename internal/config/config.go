// Package config loads the command-line tool's settings from the
// environment, optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/adavidzh/scinum/domain/rounding"
)

// Config holds the tool's defaults. Flags override these per invocation.
type Config struct {
	// Method is the default uncertainty rounding method (pdg, pub or one).
	Method string

	// Template is the default precision template for formatted output.
	Template string
}

// Load reads configuration from the environment. A .env file in the working
// directory is picked up when present; a missing file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Method:   getEnv("SCINUM_METHOD", string(rounding.MethodPublication)),
		Template: getEnv("SCINUM_TEMPLATE", ".2"),
	}

	switch rounding.Method(cfg.Method) {
	case rounding.MethodPDG, rounding.MethodPublication, rounding.MethodOne:
	default:
		return nil, fmt.Errorf("config: invalid SCINUM_METHOD %q", cfg.Method)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
