package domain

import "context"

// GenerationRequest is one prompted call to the text-generation provider.
type GenerationRequest struct {
	// AgentName is only used for logging and scripted mocks.
	AgentName    string
	SystemPrompt string
	UserMessage  string
	Params       SamplingParams
}

// Generator defines how the core application interacts with an LLM service.
// A non-nil error means no usable text was produced; see FailureReason.
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}
