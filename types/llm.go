/*
Copyright © 2025 Zachary Landes
*/
package types

// IdeaOutput is the shape of a single idea as returned by an LLM provider,
// before it becomes a models.Idea.
type IdeaOutput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Hook        string `json:"hook,omitempty"`
}

// IdeaBatchWrapper is used to unmarshal the JSON object returned by providers
// when the prompt requests a list of ideas under a root "ideas" key.
type IdeaBatchWrapper struct {
	Ideas []IdeaOutput `json:"ideas"`
}

// ModelParams carries per-request generation parameters down to a provider.
type ModelParams struct {
	ModelName   string
	MaxTokens   int
	Temperature float64
}
