package commands

import (
	"context"
	"errors"

	"github.com/PabloGalante/recovery-agent/internal/adapters/llm"
	"github.com/PabloGalante/recovery-agent/internal/app/agentflow"
	"github.com/PabloGalante/recovery-agent/internal/app/recovery"
	"github.com/PabloGalante/recovery-agent/internal/config"
	"github.com/PabloGalante/recovery-agent/internal/domain"
	"github.com/PabloGalante/recovery-agent/internal/observability"
)

// newGenerator picks the mock or a provider-backed client. The returned
// bool reports whether generation is live.
func newGenerator(ctx context.Context, cfg *config.Config) (domain.Generator, bool) {
	if cfg.UseMockLLM {
		observability.Logger().Info("using mock LLM")
		return llm.NewMockLLM(), true
	}

	client := llm.NewClient(ctx, llm.Config{
		Provider:  string(cfg.Provider),
		APIKey:    cfg.APIKey(),
		Model:     cfg.ModelName,
		UseVertex: cfg.UseVertex,
		Project:   cfg.GCPProjectID,
		Location:  cfg.GCPLocation,
		Timeout:   cfg.GenerationTimeout,
		BaseURL:   cfg.LLMBaseURL,
	})
	return client, client.Enabled()
}

func newService(ctx context.Context, cfg *config.Config, opts ...agentflow.Option) *recovery.Service {
	gen, live := newGenerator(ctx, cfg)

	opts = append([]agentflow.Option{agentflow.WithConcurrency(cfg.AgentConcurrency)}, opts...)
	orch := agentflow.NewDefaultOrchestrator(gen, opts...)

	return recovery.NewService(orch, live)
}

var errEmptyFeelings = errors.New("feelings description must not be empty")
