// Package config provides centralized configuration constants for fizzbit.
// All default values should be defined here to ensure a single source of truth.
package config

// LLM provider constants
const (
	// DefaultProvider is the default LLM provider
	DefaultProvider = "openai"

	// ProviderOpenAI represents the OpenAI provider
	ProviderOpenAI = "openai"

	// ProviderGemini represents the Google Gemini provider
	ProviderGemini = "gemini"
)

// Default model constants for each provider
const (
	// DefaultOpenAIModel is the default model for OpenAI provider
	DefaultOpenAIModel = "gpt-4o-mini"

	// DefaultOpenAIVisionModel is the default OpenAI model for image description
	DefaultOpenAIVisionModel = "gpt-4o"

	// DefaultGeminiModel is the default model for Gemini provider
	DefaultGeminiModel = "gemini-2.0-flash"

	// DefaultGeminiVisionModel is the default Gemini model for image description
	DefaultGeminiVisionModel = "gemini-2.0-flash"
)

// Deck defaults
const (
	// DefaultBatchCount is how many idea cards one generation request yields
	DefaultBatchCount = 5

	// DefaultLowWater is the queue depth that triggers a background refill
	DefaultLowWater = 2
)

// DefaultServerPort is the port the HTTP API binds when none is configured
const DefaultServerPort = 8321

// DefaultModelForProvider returns the default model for a given provider string.
func DefaultModelForProvider(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return DefaultOpenAIModel
	case ProviderGemini:
		return DefaultGeminiModel
	default:
		return ""
	}
}

// DefaultVisionModelForProvider returns the default vision-capable model for a
// given provider string.
func DefaultVisionModelForProvider(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return DefaultOpenAIVisionModel
	case ProviderGemini:
		return DefaultGeminiVisionModel
	default:
		return ""
	}
}
