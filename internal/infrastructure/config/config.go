// Package config loads workspace configuration from .skilltrail/config.yaml.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/skilltrail/skilltrail/internal/domain/events"
	"github.com/skilltrail/skilltrail/internal/infrastructure/storage"
)

// Config is the serialized representation of config.yaml. A missing file
// yields the defaults.
type Config struct {
	AI       AIConfig                 `yaml:"ai"`
	Server   ServerConfig             `yaml:"server"`
	Webhooks []events.WebhookEndpoint `yaml:"webhooks,omitempty"`
}

// AIConfig stores generation provider defaults.
type AIConfig struct {
	Provider  string `yaml:"provider"`    // "ollama", "openai", "mock"
	Model     string `yaml:"model"`       // e.g. "llama3", "gpt-4o-mini"
	BaseURL   string `yaml:"base_url"`    // override for self-hosted endpoints
	APIKeyEnv string `yaml:"api_key_env"` // env var holding the API key
}

// ServerConfig stores `skilltrail serve` defaults.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		AI: AIConfig{
			Provider:  "ollama",
			Model:     "llama3",
			APIKeyEnv: "OPENAI_API_KEY",
		},
		Server: ServerConfig{
			Addr: "localhost:4477",
		},
	}
}

// Load reads config.yaml from the workspace, applying defaults for missing
// fields. A missing file is not an error.
func Load(root string) (*Config, error) {
	repo := storage.NewFilesystemRepository(root)
	path, err := repo.ResolvePath(storage.ConfigFile)
	if err != nil {
		return nil, err
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.AI.Provider == "" {
		cfg.AI.Provider = "ollama"
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "llama3"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = "localhost:4477"
	}

	return cfg, nil
}

// Save writes config.yaml to the workspace.
func Save(root string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	repo := storage.NewFilesystemRepository(root)
	path, err := repo.ResolvePath(storage.ConfigFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
