package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/zacharylandes/fizzbit-sub000/types"
)

const openAIChatCompletionsURL = "https://api.openai.com/v1/chat/completions"

// OpenAIProvider implements the Provider interface for OpenAI LLMs.
type OpenAIProvider struct {
	apiKey     string
	timeout    time.Duration
	maxRetries int
	debug      bool
	// baseURL is overridable for tests.
	baseURL string
}

// NewOpenAIProvider creates a new OpenAIProvider with options.
func NewOpenAIProvider(apiKey string, timeout time.Duration, maxRetries int, debug bool) *OpenAIProvider {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &OpenAIProvider{
		apiKey:     apiKey,
		timeout:    timeout,
		maxRetries: maxRetries,
		debug:      debug,
		baseURL:    openAIChatCompletionsURL,
	}
}

// OpenAIRequestPayload defines the structure for the OpenAI API request.
type OpenAIRequestPayload struct {
	Model          string                `json:"model"`
	Messages       []OpenAIMessage       `json:"messages"`
	Temperature    float64               `json:"temperature,omitempty"`
	MaxTokens      int                   `json:"max_tokens,omitempty"`
	ResponseFormat *OpenAIResponseFormat `json:"response_format,omitempty"`
}

// OpenAIResponseFormat specifies the output format for OpenAI (e.g., JSON object).
type OpenAIResponseFormat struct {
	Type string `json:"type"`
}

// OpenAIMessage defines a message in the conversation for OpenAI. Content is
// either a plain string or, for vision requests, a list of content parts.
type OpenAIMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

// OpenAIContentPart is one element of a multimodal message.
type OpenAIContentPart struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	ImageURL *OpenAIImageURL `json:"image_url,omitempty"`
}

// OpenAIImageURL carries an inline data URL for vision requests.
type OpenAIImageURL struct {
	URL string `json:"url"`
}

// OpenAIResponsePayload defines the structure for the OpenAI API response.
type OpenAIResponsePayload struct {
	ID      string         `json:"id"`
	Model   string         `json:"model"`
	Choices []OpenAIChoice `json:"choices"`
	Usage   OpenAIUsage    `json:"usage"`
}

// OpenAIChoice defines a choice in the OpenAI response.
type OpenAIChoice struct {
	Index        int                 `json:"index"`
	Message      OpenAIChoiceMessage `json:"message"`
	FinishReason string              `json:"finish_reason"`
}

// OpenAIChoiceMessage is the assistant message inside a choice.
type OpenAIChoiceMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenAIUsage defines token usage statistics from OpenAI.
type OpenAIUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// GenerateIdeas calls the chat completions endpoint with a JSON-object
// response format and parses the idea batch out of the reply.
func (p *OpenAIProvider) GenerateIdeas(ctx context.Context, systemPrompt, userPrompt string, params types.ModelParams) ([]types.IdeaOutput, error) {
	payload := OpenAIRequestPayload{
		Model: params.ModelName,
		Messages: []OpenAIMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature:    params.Temperature,
		MaxTokens:      params.MaxTokens,
		ResponseFormat: &OpenAIResponseFormat{Type: "json_object"},
	}

	content, err := p.complete(ctx, payload)
	if err != nil {
		return nil, err
	}

	ideas, err := ParseIdeaBatch(content)
	if err != nil {
		return nil, fmt.Errorf("OpenAI response: %w", err)
	}
	return ideas, nil
}

// DescribeImage sends a vision request with the image inlined as a data URL.
func (p *OpenAIProvider) DescribeImage(ctx context.Context, systemPrompt, b64Image, mimeType string, params types.ModelParams) (string, error) {
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, b64Image)
	payload := OpenAIRequestPayload{
		Model: params.ModelName,
		Messages: []OpenAIMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: []OpenAIContentPart{
				{Type: "text", Text: "Describe this image."},
				{Type: "image_url", ImageURL: &OpenAIImageURL{URL: dataURL}},
			}},
		},
		MaxTokens: params.MaxTokens,
	}

	content, err := p.complete(ctx, payload)
	if err != nil {
		return "", err
	}
	description := strings.TrimSpace(content)
	if description == "" {
		return "", fmt.Errorf("OpenAI returned an empty image description")
	}
	return description, nil
}

// complete posts the payload and returns the first choice's content, retrying
// on rate limits and server errors up to maxRetries times.
func (p *OpenAIProvider) complete(ctx context.Context, payload OpenAIRequestPayload) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal OpenAI request: %w", err)
	}

	client := &http.Client{Timeout: p.timeout}
	var lastErr error

	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("build OpenAI request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+p.apiKey)

		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		respBody, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			continue
		}

		if p.debug {
			fmt.Fprintf(os.Stderr, "[llm] OpenAI status %d, %d bytes\n", resp.StatusCode, len(respBody))
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("OpenAI API error %d: %s", resp.StatusCode, truncate(string(respBody), 200))
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("OpenAI API error %d: %s", resp.StatusCode, truncate(string(respBody), 200))
		}

		var parsed OpenAIResponsePayload
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			return "", fmt.Errorf("decode OpenAI response: %w", err)
		}
		if len(parsed.Choices) == 0 {
			return "", fmt.Errorf("OpenAI returned no choices")
		}
		return parsed.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("OpenAI request failed after %d attempts: %w", p.maxRetries+1, lastErr)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
