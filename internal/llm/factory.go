package llm

import (
	"fmt"
	"strings"

	"github.com/ppiankov/cardiorisk/internal/model"
)

// OllamaBaseURL is the OpenAI-compatible endpoint of a local Ollama
const OllamaBaseURL = "http://localhost:11434/v1"

// NewProvider creates a new LLM provider based on configuration
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)

	case "ollama":
		// Ollama speaks the OpenAI chat API and ignores the key
		if config.BaseURL == "" {
			config.BaseURL = OllamaBaseURL
		}
		if config.APIKey == "" {
			config.APIKey = "ollama"
		}
		p, err := NewOpenAIProvider(config)
		if err != nil {
			return nil, err
		}
		p.name = "ollama"
		return p, nil

	case "":
		// No provider configured - LLM disabled
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, ollama)", config.Provider)
	}
}

// ConfigFromModel converts the runtime config into a provider config
func ConfigFromModel(llm model.LLMConfig, api model.APIConfig) Config {
	cfg := DefaultConfig()
	cfg.Provider = llm.Provider
	cfg.Model = llm.Model
	cfg.APIKey = llm.APIKey
	cfg.BaseURL = llm.BaseURL
	if llm.Timeout > 0 {
		cfg.Timeout = llm.Timeout
	}
	if llm.MaxTokens > 0 {
		cfg.MaxTokens = llm.MaxTokens
	}
	cfg.HTTPProxy = api.HTTPProxy
	cfg.HTTPSProxy = api.HTTPSProxy
	cfg.NoProxy = api.NoProxy
	return cfg
}
