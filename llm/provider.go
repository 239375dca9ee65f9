package llm

import (
	"context"

	"github.com/zacharylandes/fizzbit-sub000/types"
)

// Provider defines the interface for interacting with different LLM providers
// to generate idea batches and describe visual input.
type Provider interface {
	// GenerateIdeas sends a system prompt plus the compiled user prompt and
	// returns the parsed idea list. A response that parses to zero ideas
	// returns types.ErrEmptyBatch; callers treat that as "no cards this
	// round".
	GenerateIdeas(ctx context.Context, systemPrompt, userPrompt string, params types.ModelParams) ([]types.IdeaOutput, error)

	// DescribeImage turns a base64-encoded photo or drawing into a short
	// subject description for the generation pipeline.
	DescribeImage(ctx context.Context, systemPrompt, b64Image, mimeType string, params types.ModelParams) (string, error)
}
