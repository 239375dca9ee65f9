package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zacharylandes/fizzbit-sub000/types"
)

// ParseIdeaBatch extracts the idea list from a model reply. Providers are
// asked for a bare JSON object with a root "ideas" key, but replies wrapped
// in Markdown code fences are tolerated since some models add them anyway.
func ParseIdeaBatch(content string) ([]types.IdeaOutput, error) {
	cleaned := stripCodeFence(content)

	var wrapper types.IdeaBatchWrapper
	if err := json.Unmarshal([]byte(cleaned), &wrapper); err != nil {
		return nil, fmt.Errorf("parse idea batch: %w", err)
	}

	ideas := make([]types.IdeaOutput, 0, len(wrapper.Ideas))
	for _, idea := range wrapper.Ideas {
		if strings.TrimSpace(idea.Title) == "" {
			continue
		}
		ideas = append(ideas, idea)
	}
	if len(ideas) == 0 {
		return nil, types.ErrEmptyBatch
	}
	return ideas, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
