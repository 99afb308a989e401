package llm

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/PabloGalante/recovery-agent/internal/domain"
)

// AnthropicBackend is the second provider. Only one backend is active per
// process.
type AnthropicBackend struct {
	client anthropic.Client
	model  string
}

func NewAnthropicBackend(cfg Config) (*AnthropicBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic backend needs an API key")
	}

	model := cfg.Model
	if model == "" {
		model = "claude-3-5-haiku-latest"
	}

	// The SDK retries 429/5xx twice by default; a generation is one attempt.
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &AnthropicBackend{
		client: anthropic.NewClient(opts...),
		model:  model,
	}, nil
}

func (a *AnthropicBackend) Name() string {
	return ProviderAnthropic
}

func (a *AnthropicBackend) Complete(ctx context.Context, req domain.GenerationRequest) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: int64(req.Params.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.UserMessage)),
		},
		Temperature: anthropic.Float(widen(req.Params.Temperature)),
	}
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: req.SystemPrompt},
		}
	}
	if req.Params.TopP != nil {
		params.TopP = anthropic.Float(widen(*req.Params.TopP))
	}

	resp, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("messages new: %w", err)
	}

	return extractAnthropicText(resp)
}

// widen converts through the shortest decimal form so 0.6 goes out as 0.6
// and not 0.6000000238418579.
func widen(v float32) float64 {
	f, err := strconv.ParseFloat(strconv.FormatFloat(float64(v), 'f', -1, 32), 64)
	if err != nil {
		return float64(v)
	}
	return f
}

func extractAnthropicText(resp *anthropic.Message) (string, error) {
	if resp == nil {
		return "", domain.ErrEmptyResponse
	}

	var parts []string
	for i := range resp.Content {
		block := &resp.Content[i]
		if block.Type == "text" && block.Text != "" {
			parts = append(parts, block.Text)
		}
	}

	text := strings.TrimSpace(strings.Join(parts, ""))
	if text == "" {
		return "", domain.ErrEmptyResponse
	}
	return text, nil
}
