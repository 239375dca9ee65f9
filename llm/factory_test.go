package llm

import (
	"errors"
	"testing"

	"github.com/zacharylandes/fizzbit-sub000/types"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name      string
		config    *types.LLMConfig
		wantError bool
	}{
		{
			name:      "nil config",
			config:    nil,
			wantError: true,
		},
		{
			name:      "no provider",
			config:    &types.LLMConfig{},
			wantError: true,
		},
		{
			name:      "openai with key",
			config:    &types.LLMConfig{Provider: "openai", APIKey: "sk-test"},
			wantError: false,
		},
		{
			name:      "openai missing key",
			config:    &types.LLMConfig{Provider: "openai"},
			wantError: true,
		},
		{
			name:      "gemini missing key",
			config:    &types.LLMConfig{Provider: "gemini"},
			wantError: true,
		},
		{
			name:      "unknown provider",
			config:    &types.LLMConfig{Provider: "skynet", APIKey: "x"},
			wantError: true,
		},
		{
			name:      "provider name is case-insensitive",
			config:    &types.LLMConfig{Provider: " OpenAI ", APIKey: "sk-test"},
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.config)
			if (err != nil) != tt.wantError {
				t.Errorf("NewProvider() error = %v, wantError %v", err, tt.wantError)
			}
			if !tt.wantError && p == nil {
				t.Error("NewProvider() returned nil provider without error")
			}
		})
	}
}

func TestNewProviderEmptySentinel(t *testing.T) {
	_, err := NewProvider(&types.LLMConfig{})
	if !errors.Is(err, types.ErrNoProvider) {
		t.Errorf("empty provider should return ErrNoProvider, got %v", err)
	}
}
