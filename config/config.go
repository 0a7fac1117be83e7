// Package config loads the guide configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvCurrency = "FINGUIDE_CURRENCY"
	EnvVerbose  = "FINGUIDE_VERBOSE"
	EnvModel    = "FINGUIDE_MODEL"
	EnvAPIKey   = "GEMINI_API_KEY"
)

// Config is the guide configuration.
type Config struct {
	// Currency amounts are displayed in.
	Currency string `env:"FINGUIDE_CURRENCY" envDefault:"USD"`
	Verbose  bool   `env:"FINGUIDE_VERBOSE"`
	// Model is the Gemini model used by the assistant.
	Model  string `env:"FINGUIDE_MODEL" envDefault:"gemini-2.5-pro"`
	APIKey string `env:"GEMINI_API_KEY"`
}

// Load reads the dotenv files, ".env" by default, and then parses the
// configuration from the environment. Missing dotenv files are ignored and
// variables already set in the environment take precedence over them.
func Load(dotenv ...string) (Config, error) {
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, file := range dotenv {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}
	return ParseEnv()
}

// ParseEnv parses the configuration from environment variables only.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
