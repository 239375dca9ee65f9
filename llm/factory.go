package llm

import (
	"fmt"
	"strings"
	"time"

	"github.com/zacharylandes/fizzbit-sub000/types"
)

// NewProvider is a factory function that returns an instance of an
// llm.Provider based on the provided LLM configuration.
func NewProvider(config *types.LLMConfig) (Provider, error) {
	if config == nil {
		return nil, fmt.Errorf("LLM configuration cannot be nil")
	}

	apiKey := config.APIKey
	provider := strings.ToLower(strings.TrimSpace(config.Provider))

	timeout := 60 * time.Second
	if config.RequestTimeoutSeconds > 0 {
		timeout = time.Duration(config.RequestTimeoutSeconds) * time.Second
	}

	switch provider {
	case "openai":
		if apiKey == "" {
			return nil, fmt.Errorf("OpenAI provider selected but API key is missing")
		}
		return NewOpenAIProvider(apiKey, timeout, config.MaxRetries, config.Debug), nil
	case "gemini":
		if apiKey == "" {
			return nil, fmt.Errorf("Gemini provider selected but API key is missing")
		}
		return NewGeminiProvider(apiKey)
	case "":
		return nil, types.ErrNoProvider
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", config.Provider)
	}
}
