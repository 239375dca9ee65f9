package prompts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetPrompt(t *testing.T) {
	tests := []struct {
		name      string
		promptKey PromptKey
		wantError bool
		contains  []string
	}{
		{
			name:      "generate ideas prompt",
			promptKey: KeyGenerateIdeas,
			wantError: false,
			contains:  []string{"ideas", "JSON"},
		},
		{
			name:      "explore idea prompt",
			promptKey: KeyExploreIdea,
			wantError: false,
			contains:  []string{"follow-on"},
		},
		{
			name:      "describe image prompt",
			promptKey: KeyDescribeImage,
			wantError: false,
			contains:  []string{"image"},
		},
		{
			name:      "unknown key",
			promptKey: PromptKey("Bogus"),
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt, err := GetPrompt(tt.promptKey, t.TempDir())
			if (err != nil) != tt.wantError {
				t.Errorf("GetPrompt() error = %v, wantError %v", err, tt.wantError)
				return
			}
			if !tt.wantError {
				promptLower := strings.ToLower(prompt)
				for _, expected := range tt.contains {
					if !strings.Contains(promptLower, strings.ToLower(expected)) {
						t.Errorf("GetPrompt(%v) missing expected content %q in prompt", tt.promptKey, expected)
					}
				}
			}
		})
	}
}

func TestGetPromptCustomOverride(t *testing.T) {
	dir := t.TempDir()
	custom := "my custom generation instructions"
	if err := os.WriteFile(filepath.Join(dir, "generate_ideas_prompt.txt"), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	prompt, err := GetPrompt(KeyGenerateIdeas, dir)
	if err != nil {
		t.Fatalf("GetPrompt() error = %v", err)
	}
	if prompt != custom {
		t.Errorf("custom prompt file should win, got %q", prompt)
	}

	// Empty override files fall back to the default.
	if err := os.WriteFile(filepath.Join(dir, "generate_ideas_prompt.txt"), []byte("   \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	prompt, err = GetPrompt(KeyGenerateIdeas, dir)
	if err != nil {
		t.Fatalf("GetPrompt() error = %v", err)
	}
	if prompt != GenerateIdeasSystemPrompt {
		t.Error("blank custom file should fall back to the default prompt")
	}
}
