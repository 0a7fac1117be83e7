package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseEnvDefaults(t *testing.T) {
	t.Setenv(EnvCurrency, "")
	os.Unsetenv(EnvCurrency)
	t.Setenv(EnvModel, "")
	os.Unsetenv(EnvModel)

	cfg, err := ParseEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Currency != "USD" {
		t.Errorf("expected default currency USD, got %q", cfg.Currency)
	}
	if cfg.Model != "gemini-2.5-pro" {
		t.Errorf("expected default model gemini-2.5-pro, got %q", cfg.Model)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv(EnvVerbose, "not-a-bool")

	_, err := ParseEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	dotenv := filepath.Join(t.TempDir(), "test.env")
	content := EnvCurrency + "=EUR\n" + EnvVerbose + "=true\n" + EnvModel + "=gemini-2.5-flash\n"
	if err := os.WriteFile(dotenv, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	// The environment wins over the file.
	t.Setenv(EnvModel, "gemini-test")
	// Registered for cleanup, then left for the file to set.
	t.Setenv(EnvCurrency, "")
	os.Unsetenv(EnvCurrency)
	t.Setenv(EnvVerbose, "")
	os.Unsetenv(EnvVerbose)

	cfg, err := Load(dotenv)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", cfg.Currency)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
	if cfg.Model != "gemini-test" {
		t.Errorf("Model = %q, want gemini-test", cfg.Model)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("load with a missing file: %v", err)
	}
}
