/*
Copyright © 2025 Zachary Landes
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose   bool            `mapstructure:"verbose"`
	Config    string          `mapstructure:"config"`
	Project   ProjectConfig   `mapstructure:"project" validate:"required"`
	Data      DataConfig      `mapstructure:"data" validate:"required"`
	LLM       LLMConfig       `mapstructure:"llm" validate:"omitempty"`
	Deck      DeckConfig      `mapstructure:"deck" validate:"omitempty"`
	Server    ServerConfig    `mapstructure:"server" validate:"omitempty"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// ProjectConfig holds project-related settings
type ProjectConfig struct {
	RootDir      string `mapstructure:"rootDir" validate:"required"`
	IdeasDir     string `mapstructure:"ideasDir" validate:"required"`
	TemplatesDir string `mapstructure:"templatesDir" validate:"required"`
	SketchesDir  string `mapstructure:"sketchesDir" validate:"required"`
}

// DataConfig holds idea storage configuration
type DataConfig struct {
	File   string `mapstructure:"file" validate:"required"`
	Format string `mapstructure:"format" validate:"required,oneof=json yaml toml sqlite"`
}

// LLMConfig holds configuration for the idea generation provider
type LLMConfig struct {
	Provider  string `mapstructure:"provider" validate:"omitempty,oneof=openai gemini"`
	ModelName string `mapstructure:"modelName" validate:"omitempty,min=1"`
	APIKey    string `mapstructure:"apiKey" validate:"omitempty,min=1"`
	// VisionModelName is used for image/drawing description; falls back to ModelName.
	VisionModelName string  `mapstructure:"visionModelName" validate:"omitempty,min=1"`
	MaxOutputTokens int     `mapstructure:"maxOutputTokens" validate:"omitempty,min=1"`
	Temperature     float64 `mapstructure:"temperature" validate:"omitempty,min=0,max=2"`
	// RequestTimeoutSeconds controls the HTTP client timeout for LLM calls
	RequestTimeoutSeconds int `mapstructure:"requestTimeoutSeconds" validate:"omitempty,min=5,max=600"`
	// MaxRetries controls how many automatic retries on recoverable errors (429, 5xx)
	MaxRetries int `mapstructure:"maxRetries" validate:"omitempty,min=0,max=3"`
	// Debug enables extra request/response logging within the LLM provider
	Debug bool `mapstructure:"debug"`
}

// DeckConfig holds the swipe deck tuning knobs.
type DeckConfig struct {
	// BatchCount is how many ideas each generation round asks for.
	BatchCount int `mapstructure:"batchCount" validate:"omitempty,min=1,max=20"`
	// LowWater triggers a refill when remaining cards drop to this count.
	LowWater int `mapstructure:"lowWater" validate:"omitempty,min=0,max=10"`
}

// ServerConfig holds the local HTTP API settings.
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
}

// TelemetryConfig controls anonymous usage events. Disabled unless opted in.
type TelemetryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	APIKey  string `mapstructure:"apiKey"`
	Host    string `mapstructure:"host"`
}
