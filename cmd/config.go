package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zacharylandes/fizzbit-sub000/internal/config"
	"github.com/zacharylandes/fizzbit-sub000/internal/logger"
	"github.com/zacharylandes/fizzbit-sub000/types"
)

const (
	configName = ".fizzbit"
	envPrefix  = "FIZZBIT"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate caches struct info across config validations.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(cfg *types.AppConfig) error {
	return validate.Struct(cfg)
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// Load .env file first if present. A missing .env is fine.
	_ = godotenv.Load()

	// Environment variable handling must be set up BEFORE reading the config
	// file so env vars can influence config loading.
	viper.SetEnvPrefix(envPrefix) // e.g., FIZZBIT_VERBOSE
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfgFileFlag := viper.GetString("config") // Value from --config flag

	// Project-local config directory takes priority; we need its name before
	// the full unmarshal to locate the config file itself.
	potentialProjectConfigDir := viper.GetString("project.rootDir")
	if potentialProjectConfigDir == "" {
		potentialProjectConfigDir = ".fizzbit"
	}

	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		if _, err := os.Stat(potentialProjectConfigDir); !os.IsNotExist(err) {
			viper.AddConfigPath(potentialProjectConfigDir) // ./.fizzbit/.fizzbit.yaml
			viper.SetConfigName(configName)
		} else {
			home, err := os.UserHomeDir()
			cobra.CheckErr(err)
			viper.AddConfigPath(home) // $HOME/.fizzbit.yaml
			viper.AddConfigPath(".")  // ./.fizzbit.yaml
			viper.SetConfigName(configName)
		}
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFileFlag != "" {
				fmt.Fprintln(os.Stderr, "Error: Specified config file not found:", cfgFileFlag)
			} else if viper.GetBool("verbose") {
				fmt.Fprintln(os.Stderr, "No config file found. Using defaults and environment variables.")
			}
		} else {
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
		}
	}

	// Set default values
	viper.SetDefault("project.rootDir", ".fizzbit")
	viper.SetDefault("project.ideasDir", "ideas")
	viper.SetDefault("project.templatesDir", "templates")
	viper.SetDefault("project.sketchesDir", "sketches")
	viper.SetDefault("data.file", "ideas.json")
	viper.SetDefault("data.format", "json")

	// Defaults for LLMConfig
	viper.SetDefault("llm.provider", config.DefaultProvider)
	viper.SetDefault("llm.modelName", "")
	viper.SetDefault("llm.apiKey", "")
	viper.SetDefault("llm.maxOutputTokens", 4096)
	viper.SetDefault("llm.temperature", 0.9)
	viper.SetDefault("llm.requestTimeoutSeconds", 120)
	viper.SetDefault("llm.maxRetries", 2)

	viper.SetDefault("deck.batchCount", config.DefaultBatchCount)
	viper.SetDefault("deck.lowWater", config.DefaultLowWater)
	viper.SetDefault("server.port", config.DefaultServerPort)
	viper.SetDefault("telemetry.enabled", false)

	// After all sources are configured, unmarshal into GlobalAppConfig
	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling config: %s\n", err)
		os.Exit(1)
	}

	// A config file may exist but omit these nested keys; fall back to the
	// viper defaults rather than failing validation.
	if GlobalAppConfig.Project.RootDir == "" {
		GlobalAppConfig.Project.RootDir = viper.GetString("project.rootDir")
	}
	if GlobalAppConfig.Project.IdeasDir == "" {
		GlobalAppConfig.Project.IdeasDir = viper.GetString("project.ideasDir")
	}
	if GlobalAppConfig.Project.TemplatesDir == "" {
		GlobalAppConfig.Project.TemplatesDir = viper.GetString("project.templatesDir")
	}
	if GlobalAppConfig.Project.SketchesDir == "" {
		GlobalAppConfig.Project.SketchesDir = viper.GetString("project.sketchesDir")
	}

	if err := validateAppConfig(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration validation error: %s\n", err)
		os.Exit(1)
	}

	logger.SetBasePath(GlobalAppConfig.Project.RootDir)
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
