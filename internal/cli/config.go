package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults used when neither environment nor config file say otherwise.
const (
	defaultBackendURL = "http://localhost:8000"
	defaultWhatsApp   = "255678049280"
)

// CLIConfig holds CLI configuration persisted to disk.
type CLIConfig struct {
	BackendURL string `yaml:"backend_url,omitempty"`
	WhatsApp   string `yaml:"whatsapp,omitempty"`
}

// configPath returns the path to the CLI config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "zet", "config.yaml"), nil
}

// loadConfig reads the CLI config from disk.
// Returns a zero-value config if the file doesn't exist.
func loadConfig() (CLIConfig, error) {
	path, err := configPath()
	if err != nil {
		return CLIConfig{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return CLIConfig{}, nil
	}
	if err != nil {
		return CLIConfig{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg CLIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CLIConfig{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// saveConfig writes the CLI config to disk.
func saveConfig(cfg CLIConfig) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// getBackendURL returns the backend root URL from env var, config, or
// default. The client appends the fixed /api suffix itself.
func getBackendURL() string {
	if v := os.Getenv("ZET_BACKEND_URL"); v != "" {
		return v
	}
	cfg, err := loadConfig()
	if err == nil && cfg.BackendURL != "" {
		return cfg.BackendURL
	}
	return defaultBackendURL
}

// getWhatsApp returns the WhatsApp number from env var, config, or default.
func getWhatsApp() string {
	if v := os.Getenv("ZET_WHATSAPP"); v != "" {
		return v
	}
	cfg, err := loadConfig()
	if err == nil && cfg.WhatsApp != "" {
		return cfg.WhatsApp
	}
	return defaultWhatsApp
}
