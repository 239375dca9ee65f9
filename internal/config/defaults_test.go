package config

import "testing"

func TestDefaultModelForProvider(t *testing.T) {
	if got := DefaultModelForProvider(ProviderOpenAI); got != DefaultOpenAIModel {
		t.Errorf("openai default = %q", got)
	}
	if got := DefaultModelForProvider(ProviderGemini); got != DefaultGeminiModel {
		t.Errorf("gemini default = %q", got)
	}
	if got := DefaultModelForProvider("unknown"); got != "" {
		t.Errorf("unknown provider should have no default, got %q", got)
	}
}

func TestDefaultVisionModelForProvider(t *testing.T) {
	if got := DefaultVisionModelForProvider(ProviderOpenAI); got != DefaultOpenAIVisionModel {
		t.Errorf("openai vision default = %q", got)
	}
	if got := DefaultVisionModelForProvider("unknown"); got != "" {
		t.Errorf("unknown provider should have no vision default, got %q", got)
	}
}
