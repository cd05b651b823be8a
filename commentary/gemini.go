package commentary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"groupform-server-go/config"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiClient generates commentary with Google's Gemini API.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

var _ Generator = (*GeminiClient)(nil)

// NewGeminiClient creates a Gemini-backed generator. cfg.BaseURL, when set,
// replaces the public Gemini endpoint.
func NewGeminiClient(ctx context.Context, cfg config.CommentaryConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: strings.TrimSpace(cfg.BaseURL),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiClient{client: client, model: model, timeout: timeout}, nil
}

// Generate implements Generator. The call is bounded by the configured timeout.
func (g *GeminiClient) Generate(ctx context.Context, groupText string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromText(BuildPrompt(groupText), genai.RoleUser),
	}
	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemInstruction, genai.RoleUser),
	})
	if err != nil {
		return "", &ServiceError{Provider: "gemini", Err: err}
	}
	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", &ServiceError{Provider: "gemini", Err: fmt.Errorf("response empty")}
	}
	return text, nil
}
