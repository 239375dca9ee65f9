package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/zacharylandes/fizzbit-sub000/types"
)

// GeminiProvider implements the Provider interface on top of the Google
// GenAI SDK.
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider creates a Gemini-backed provider.
func NewGeminiProvider(apiKey string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &GeminiProvider{client: client}, nil
}

// GenerateIdeas asks Gemini for a JSON idea batch.
func (p *GeminiProvider) GenerateIdeas(ctx context.Context, systemPrompt, userPrompt string, params types.ModelParams) ([]types.IdeaOutput, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	}
	if params.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(params.Temperature))
	}
	if params.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(params.MaxTokens)
	}

	result, err := p.client.Models.GenerateContent(ctx, params.ModelName, genai.Text(userPrompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("Gemini generate: %w", err)
	}

	ideas, err := ParseIdeaBatch(result.Text())
	if err != nil {
		return nil, fmt.Errorf("Gemini response: %w", err)
	}
	return ideas, nil
}

// DescribeImage sends the image bytes inline and returns the description.
func (p *GeminiProvider) DescribeImage(ctx context.Context, systemPrompt, b64Image, mimeType string, params types.ModelParams) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(b64Image)
	if err != nil {
		return "", fmt.Errorf("decode image payload: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText("Describe this image."),
			genai.NewPartFromBytes(raw, mimeType),
		}, genai.RoleUser),
	}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	result, err := p.client.Models.GenerateContent(ctx, params.ModelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("Gemini describe image: %w", err)
	}

	description := strings.TrimSpace(result.Text())
	if description == "" {
		return "", fmt.Errorf("Gemini returned an empty image description")
	}
	return description, nil
}
