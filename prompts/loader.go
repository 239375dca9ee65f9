package prompts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PromptKey is a type for identifying specific prompts.
type PromptKey string

const (
	// KeyGenerateIdeas is the key for the main idea generation prompt.
	KeyGenerateIdeas PromptKey = "GenerateIdeas"
	// KeyExploreIdea is the key for the swipe-up exploration prompt.
	KeyExploreIdea PromptKey = "ExploreIdea"
	// KeyDescribeImage is the key for the image/drawing description prompt.
	KeyDescribeImage PromptKey = "DescribeImage"
)

// promptConfig defines the default content and filename for a prompt.
type promptConfig struct {
	defaultContent string
	filename       string
}

// promptRegistry maps a PromptKey to its configuration.
var promptRegistry = map[PromptKey]promptConfig{
	KeyGenerateIdeas: {
		defaultContent: GenerateIdeasSystemPrompt,
		filename:       "generate_ideas_prompt.txt",
	},
	KeyExploreIdea: {
		defaultContent: ExploreIdeaSystemPrompt,
		filename:       "explore_idea_prompt.txt",
	},
	KeyDescribeImage: {
		defaultContent: DescribeImageSystemPrompt,
		filename:       "describe_image_prompt.txt",
	},
}

// GetPrompt searches for a user-provided prompt file in the project's templates
// directory. If found, it returns the content of that file. Otherwise, it
// returns the hardcoded default prompt content.
func GetPrompt(key PromptKey, templatesDir string) (string, error) {
	config, ok := promptRegistry[key]
	if !ok {
		return "", fmt.Errorf("unrecognized prompt key: %s", key)
	}

	if strings.TrimSpace(templatesDir) == "" {
		return config.defaultContent, nil
	}

	customPromptPath := filepath.Join(templatesDir, config.filename)

	info, err := os.Stat(customPromptPath)
	if err != nil || info.IsDir() {
		return config.defaultContent, nil
	}

	content, err := os.ReadFile(customPromptPath)
	if err != nil {
		return "", fmt.Errorf("failed to read custom prompt file %s: %w", customPromptPath, err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return config.defaultContent, nil
	}
	return string(content), nil
}
