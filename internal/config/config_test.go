package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SyedZohaibTech/hackathon-todo/internal/config"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv(config.BaseURLEnv, "")

	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if cfg.BaseURL != config.DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", cfg.BaseURL)
	}
	if cfg.TokenPath() != filepath.Join(dir, config.TokenFile) {
		t.Errorf("unexpected token path: %q", cfg.TokenPath())
	}
}

func TestNew_SettingsFile(t *testing.T) {
	t.Setenv(config.BaseURLEnv, "")

	dir := t.TempDir()
	settings := []byte("base_url: https://todo.example.com/\n")
	if err := os.WriteFile(filepath.Join(dir, config.SettingsFile), settings, 0644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Trailing slash is trimmed.
	if cfg.BaseURL != "https://todo.example.com" {
		t.Errorf("expected settings base URL, got %q", cfg.BaseURL)
	}
}

func TestNew_EnvOverridesSettings(t *testing.T) {
	dir := t.TempDir()
	settings := []byte("base_url: https://todo.example.com\n")
	if err := os.WriteFile(filepath.Join(dir, config.SettingsFile), settings, 0644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	t.Setenv(config.BaseURLEnv, "http://localhost:9000")

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if cfg.BaseURL != "http://localhost:9000" {
		t.Errorf("expected env base URL, got %q", cfg.BaseURL)
	}
}

func TestNew_InvalidSettings(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.SettingsFile), []byte("{not yaml"), 0644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	if _, err := config.New(dir); err == nil {
		t.Error("expected error for malformed settings")
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	if got := config.DefaultConfigDir(); got != filepath.Join(base, config.AppName) {
		t.Errorf("unexpected config dir: %q", got)
	}
}
