package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/PabloGalante/recovery-agent/internal/domain"
)

type GeminiBackend struct {
	client    *genai.Client
	modelName string
}

// NewGeminiBackend creates a Gemini backend. With UseVertex it talks to
// Vertex AI using the project and region, otherwise to the Gemini API with
// the API key.
func NewGeminiBackend(ctx context.Context, cfg Config) (*GeminiBackend, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.UseVertex {
		if cfg.Project == "" || cfg.Location == "" {
			return nil, fmt.Errorf("vertex backend needs project and location")
		}
		clientCfg = &genai.ClientConfig{
			Project:  cfg.Project,
			Location: cfg.Location,
			Backend:  genai.BackendVertexAI,
		}
	}

	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}

	return &GeminiBackend{
		client:    client,
		modelName: modelName,
	}, nil
}

func (g *GeminiBackend) Name() string {
	return ProviderGemini
}

// Complete implements Backend using Models.GenerateContent.
func (g *GeminiBackend) Complete(ctx context.Context, req domain.GenerationRequest) (string, error) {
	temp := req.Params.Temperature

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemPrompt, genai.RoleUser),
		Temperature:       &temp,
		MaxOutputTokens:   req.Params.MaxTokens,
	}
	if req.Params.TopP != nil {
		topP := *req.Params.TopP
		cfg.TopP = &topP
	}

	res, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(req.UserMessage), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return extractGeminiText(res)
}

// geminiTextExtractors are tried in order; the first non-empty text wins.
var geminiTextExtractors = []func(*genai.GenerateContentResponse) string{
	// direct text accessor
	func(res *genai.GenerateContentResponse) string { return res.Text() },
	// nested candidate -> content -> parts
	candidatePartsText,
}

// extractGeminiText normalizes every response shape we know into one text
// value. A well-formed response without text is a failure, same as a
// transport error.
func extractGeminiText(res *genai.GenerateContentResponse) (string, error) {
	if res == nil {
		return "", domain.ErrEmptyResponse
	}
	for _, extract := range geminiTextExtractors {
		if text := strings.TrimSpace(extract(res)); text != "" {
			return text, nil
		}
	}
	return "", domain.ErrEmptyResponse
}

func candidatePartsText(res *genai.GenerateContentResponse) string {
	for _, cand := range res.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, part := range cand.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			sb.WriteString(part.Text)
		}
		if sb.Len() > 0 {
			return sb.String()
		}
	}
	return ""
}
