package recovery

import (
	"context"
	"errors"
	"strings"

	"github.com/PabloGalante/recovery-agent/internal/app/agentflow"
	"github.com/PabloGalante/recovery-agent/internal/domain"
	"github.com/PabloGalante/recovery-agent/internal/observability"
)

// ErrMissingFeelings is returned when the feelings description is blank.
var ErrMissingFeelings = errors.New("feelings_description is required")

const (
	GeneratorLive    = "live"
	GeneratorOffline = "offline"
)

// Service is the application entry point for building recovery plans.
type Service struct {
	orchestrator *agentflow.Orchestrator
	live         bool
}

// NewService wraps an orchestrator. live only feeds the health payload.
func NewService(orchestrator *agentflow.Orchestrator, live bool) *Service {
	return &Service{
		orchestrator: orchestrator,
		live:         live,
	}
}

type RunAgentsInput struct {
	FeelingsDescription string
}

// RunAgents builds one plan. The only error is a blank input; agent
// failures are absorbed into fallbacks.
func (s *Service) RunAgents(ctx context.Context, in RunAgentsInput) (domain.RecoveryPlan, error) {
	log := observability.LoggerFromContext(ctx)

	if strings.TrimSpace(in.FeelingsDescription) == "" {
		return domain.RecoveryPlan{}, ErrMissingFeelings
	}

	// The feelings text is never logged, only its size.
	log.Info("running agents", "input_chars", len([]rune(in.FeelingsDescription)))

	plan := s.orchestrator.BuildPlan(ctx, domain.UserInput{
		FeelingsDescription: in.FeelingsDescription,
	})

	log.Info("recovery plan ready", "agents_count", len(plan.Agents))
	return plan, nil
}

// GeneratorStatus is "live" or "offline".
func (s *Service) GeneratorStatus() string {
	if s.live {
		return GeneratorLive
	}
	return GeneratorOffline
}

// AgentDescriptions lists "Name - Role" for every persona the orchestrator
// runs, in plan order.
func (s *Service) AgentDescriptions() []string {
	personas := s.orchestrator.Personas()
	out := make([]string, 0, len(personas))
	for _, p := range personas {
		out = append(out, p.Name+" - "+p.Role)
	}
	return out
}
