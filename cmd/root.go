/*
Copyright © 2025 Zachary Landes
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zacharylandes/fizzbit-sub000/internal/config"
	"github.com/zacharylandes/fizzbit-sub000/internal/logger"
	"github.com/zacharylandes/fizzbit-sub000/internal/telemetry"
	"github.com/zacharylandes/fizzbit-sub000/llm"
	"github.com/zacharylandes/fizzbit-sub000/models"
	"github.com/zacharylandes/fizzbit-sub000/store"
	"github.com/zacharylandes/fizzbit-sub000/types"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// ErrNoIdeasFound is returned when an interactive selection is attempted but no ideas are available.
	ErrNoIdeasFound = errors.New("no ideas found matching your criteria")
	// version is the application version.
	version = "0.1.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fizzbit",
	Short: "fizzbit turns whatever is on your mind into swipeable idea cards.",
	Long: `fizzbit is a creative-inspiration engine for the terminal.
Spark a batch of idea cards from a subject, a photo, a drawing, or a
voice-note transcript, swipe through them, and pin the keepers to a canvas.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
			os.Exit(0)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer logger.HandlePanic()
	logger.SetVersion(version)
	if len(os.Args) > 1 {
		logger.SetCommand(os.Args[1])
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.fizzbit.yaml or ./.fizzbit.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// GetIdeaFilePath returns the full path to the ideas data file.
func GetIdeaFilePath() string {
	cfg := GetConfig()
	return filepath.Join(cfg.Project.RootDir, cfg.Project.IdeasDir, cfg.Data.File)
}

// GetStore initializes and returns the idea store for the configured backend.
func GetStore() (store.IdeaStore, error) {
	cfg := GetConfig()
	s := store.NewStore(cfg.Data.Format)

	ideaFilePath := GetIdeaFilePath()
	err := s.Initialize(map[string]string{
		"dataFile":       ideaFilePath,
		"dataFileFormat": cfg.Data.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store at %s: %w", ideaFilePath, err)
	}
	return s, nil
}

// getProvider builds the configured LLM provider, applying model defaults.
func getProvider() (llm.Provider, error) {
	cfg := GetConfig()
	llmCfg := cfg.LLM
	if llmCfg.ModelName == "" {
		llmCfg.ModelName = config.DefaultModelForProvider(llmCfg.Provider)
	}
	return llm.NewProvider(&llmCfg)
}

// modelParams assembles generation parameters from config. When vision is
// true the vision model is used, falling back to the text model.
func modelParams(vision bool) types.ModelParams {
	cfg := GetConfig()
	name := cfg.LLM.ModelName
	if name == "" {
		name = config.DefaultModelForProvider(cfg.LLM.Provider)
	}
	if vision {
		if cfg.LLM.VisionModelName != "" {
			name = cfg.LLM.VisionModelName
		} else if v := config.DefaultVisionModelForProvider(cfg.LLM.Provider); v != "" {
			name = v
		}
	}
	return types.ModelParams{
		ModelName:   name,
		MaxTokens:   cfg.LLM.MaxOutputTokens,
		Temperature: cfg.LLM.Temperature,
	}
}

// requestTimeout is the per-call timeout for generation commands.
func requestTimeout() time.Duration {
	secs := GetConfig().LLM.RequestTimeoutSeconds
	if secs <= 0 {
		secs = 120
	}
	return time.Duration(secs) * time.Second
}

// getTelemetry builds the opt-in telemetry client.
func getTelemetry() *telemetry.Client {
	cfg := GetConfig()
	return telemetry.New(cfg.Telemetry.Enabled, cfg.Telemetry.APIKey, cfg.Telemetry.Host, cfg.Project.RootDir)
}

// templatesDir is where users can drop prompt template overrides.
func templatesDir() string {
	cfg := GetConfig()
	return filepath.Join(cfg.Project.RootDir, cfg.Project.TemplatesDir)
}

// selectIdeaInteractive presents a prompt to the user to select an idea from a
// list. It can be filtered using the provided filter function.
func selectIdeaInteractive(ideaStore store.IdeaStore, filterFn func(models.Idea) bool, label string) (models.Idea, error) {
	ideas, err := ideaStore.ListIdeas(filterFn, nil)
	if err != nil {
		return models.Idea{}, fmt.Errorf("failed to list ideas for selection: %w", err)
	}

	if len(ideas) == 0 {
		return models.Idea{}, ErrNoIdeasFound
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   `> {{ .Title | cyan }} ({{ .Source }})`,
		Inactive: `  {{ .Title | faint }} ({{ .Source }})`,
		Selected: `{{ "✔" | green }} {{ .Title | faint }}`,
		Details: `
--------- Idea ----------
{{ "Title:\t" | faint }} {{ .Title }}
{{ "About:\t" | faint }} {{ .Description }}
{{ "Hook:\t" | faint }} {{ .Hook }}
{{ "Source:\t" | faint }} {{ .Source }}`,
	}

	searcher := func(input string, index int) bool {
		idea := ideas[index]
		name := strings.ToLower(idea.Title)
		input = strings.ToLower(input)
		return strings.Contains(name, input) || strings.Contains(idea.ID, input)
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     ideas,
		Templates: templates,
		Searcher:  searcher,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return models.Idea{}, err // Return error as is (includes promptui.ErrInterrupt)
	}

	return ideas[i], nil
}
