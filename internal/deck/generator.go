package deck

import (
	"context"
	"fmt"

	"github.com/zacharylandes/fizzbit-sub000/internal/blend"
	"github.com/zacharylandes/fizzbit-sub000/internal/logger"
	"github.com/zacharylandes/fizzbit-sub000/llm"
	"github.com/zacharylandes/fizzbit-sub000/models"
	"github.com/zacharylandes/fizzbit-sub000/prompts"
	"github.com/zacharylandes/fizzbit-sub000/types"
)

// LLMGenerator implements Generator on top of an LLM provider, compiling the
// blend into the generation prompt for every round.
type LLMGenerator struct {
	provider     llm.Provider
	params       types.ModelParams
	templatesDir string
	// Source tags the cards this generator produces; defaults to text.
	Source models.IdeaSource
	// SourceContent is carried onto every produced card (e.g. the image
	// description or transcript the subject came from).
	SourceContent string
}

// NewLLMGenerator wires a provider into the swipe flow.
func NewLLMGenerator(provider llm.Provider, params types.ModelParams, templatesDir string) *LLMGenerator {
	return &LLMGenerator{
		provider:     provider,
		params:       params,
		templatesDir: templatesDir,
		Source:       models.SourceText,
	}
}

// NextBatch compiles the blend-aware prompt and converts provider output into
// idea cards.
func (g *LLMGenerator) NextBatch(ctx context.Context, subject string, w blend.Weights, count int) ([]models.Idea, error) {
	system, err := prompts.GetPrompt(prompts.KeyGenerateIdeas, g.templatesDir)
	if err != nil {
		return nil, fmt.Errorf("load generation prompt: %w", err)
	}
	user := prompts.Compile(subject, w, count)
	logger.SetLastSubject(subject)
	logger.SetLastPrompt(user)

	outputs, err := g.provider.GenerateIdeas(ctx, system, user, g.params)
	if err != nil {
		return nil, err
	}
	return g.toCards(outputs, subject), nil
}

// Explore asks for follow-on ideas branching off parent. The parent link is
// attached by the session, not here.
func (g *LLMGenerator) Explore(ctx context.Context, parent models.Idea, count int) ([]models.Idea, error) {
	system, err := prompts.GetPrompt(prompts.KeyExploreIdea, g.templatesDir)
	if err != nil {
		return nil, fmt.Errorf("load explore prompt: %w", err)
	}
	user := fmt.Sprintf("Generate %d follow-on ideas for this idea:\nTITLE: %s\nIDEA: %s\n", count, parent.Title, parent.Description)
	logger.SetLastSubject(parent.Title)
	logger.SetLastPrompt(user)

	outputs, err := g.provider.GenerateIdeas(ctx, system, user, g.params)
	if err != nil {
		return nil, err
	}
	return g.toCards(outputs, parent.Title), nil
}

func (g *LLMGenerator) toCards(outputs []types.IdeaOutput, subject string) []models.Idea {
	cards := make([]models.Idea, 0, len(outputs))
	for _, out := range outputs {
		if out.Title == "" {
			continue
		}
		idea := models.NewIdea(out.Title, out.Description, g.Source)
		idea.Hook = out.Hook
		content := g.SourceContent
		if content == "" {
			content = subject
		}
		idea.SourceContent = &content
		cards = append(cards, *idea)
	}
	return cards
}
