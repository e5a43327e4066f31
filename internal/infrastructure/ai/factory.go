package ai

import (
	"fmt"
	"os"

	"github.com/skilltrail/skilltrail/internal/domain/ai"
	"github.com/skilltrail/skilltrail/internal/infrastructure/config"
)

// NewProvider builds a provider from workspace configuration. API keys are
// read from the environment, never from config files.
func NewProvider(cfg config.AIConfig) (ai.Provider, error) {
	switch cfg.Provider {
	case "ollama", "":
		return NewOllamaProvider(cfg.Model, cfg.BaseURL), nil
	case "openai":
		keyEnv := cfg.APIKeyEnv
		if keyEnv == "" {
			keyEnv = "OPENAI_API_KEY"
		}
		return NewOpenAIProvider(cfg.Model, os.Getenv(keyEnv), cfg.BaseURL), nil
	case "mock":
		return &MockProvider{Model: cfg.Model}, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", cfg.Provider)
	}
}

// NewResilientFromConfig wires the configured provider with retry/timeout.
func NewResilientFromConfig(cfg config.AIConfig) (ai.Provider, error) {
	inner, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	return NewResilientProvider(inner), nil
}
