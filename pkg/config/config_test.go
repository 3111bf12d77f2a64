package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestGetConfigDir validates config directory access
func TestGetConfigDir(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	configDir := GetConfigDir()
	if configDir == "" {
		t.Fatal("Config directory should not be empty")
	}

	if _, err := os.Stat(configDir); err != nil {
		t.Errorf("Config directory should exist: %v", err)
	}
}

// TestStatePaths validates the session and preferences paths
func TestStatePaths(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	if !filepath.IsAbs(GetSessionPath()) {
		t.Error("Session path should be absolute")
	}
	if filepath.Dir(GetSessionPath()) != tempDir {
		t.Errorf("Session path should live in the config dir, got %s", GetSessionPath())
	}

	if filepath.Base(GetPrefsPath()) != "preferences.json" {
		t.Errorf("Unexpected preferences path: %s", GetPrefsPath())
	}
}

// TestDefaults validates development defaults
func TestDefaults(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	if GetString("api.base_url") == "" {
		t.Error("api.base_url should have a default")
	}
	if GetInt("api.timeout") <= 0 {
		t.Error("api.timeout should have a positive default")
	}
	if GetString("api.currency") != "INR" {
		t.Errorf("api.currency default should be INR, got %s", GetString("api.currency"))
	}
	if GetString("output.format") == "" {
		t.Error("output.format should have a default")
	}
}

// TestInitWithCustomPath validates custom config path
func TestInitWithCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	customConfigPath := filepath.Join(tempDir, "custom", "path", "config.toml")

	if err := Init(customConfigPath); err != nil {
		t.Fatalf("Failed to initialize with custom path: %v", err)
	}

	expectedDir := filepath.Join(tempDir, "custom", "path")
	if GetConfigDir() != expectedDir {
		t.Errorf("Expected config dir %s, got %s", expectedDir, GetConfigDir())
	}
}

// TestSetIsTransient validates that Set does not touch the config file
func TestSetIsTransient(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.toml")
	if err := Init(configPath); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	Set("output.format", "json")

	if GetString("output.format") != "json" {
		t.Error("Set should override the in-memory value")
	}
	if _, err := os.Stat(configPath); !os.IsNotExist(err) {
		t.Error("Set should not create the config file")
	}
}
