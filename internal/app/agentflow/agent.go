package agentflow

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/PabloGalante/recovery-agent/internal/domain"
	"github.com/PabloGalante/recovery-agent/internal/observability"
)

type AgentInput struct {
	UserMessage string
}

type AgentOutput struct {
	Result domain.AgentResult

	// FailureReason is set when Result holds a fallback.
	FailureReason string
	Elapsed       time.Duration
}

// PersonaAgent runs one persona against the generator. Run never fails:
// every failure path ends in a fallback.
type PersonaAgent struct {
	persona   Persona
	llm       domain.Generator
	fallbacks *FallbackResolver
	tracer    trace.Tracer
}

func NewPersonaAgent(p Persona, llm domain.Generator, fallbacks *FallbackResolver, tracer trace.Tracer) *PersonaAgent {
	return &PersonaAgent{
		persona:   p,
		llm:       llm,
		fallbacks: fallbacks,
		tracer:    tracer,
	}
}

func (a *PersonaAgent) Name() string {
	return a.persona.Name
}

func (a *PersonaAgent) Run(ctx context.Context, in AgentInput) AgentOutput {
	ctx, span := a.tracer.Start(ctx, "agentflow.agent",
		trace.WithAttributes(attribute.String("agent", a.persona.Name)))
	defer span.End()

	log := observability.LoggerFromContext(ctx).With("agent", a.Name())
	start := time.Now()

	text, err := a.llm.Generate(ctx, domain.GenerationRequest{
		AgentName:    a.persona.Name,
		SystemPrompt: a.persona.SystemPrompt,
		UserMessage:  in.UserMessage,
		Params:       a.persona.Params,
	})
	elapsed := time.Since(start)

	reason := domain.FailureReason(err)
	if err == nil {
		text = strings.TrimSpace(text)
		switch {
		case text == "":
			reason = domain.ReasonEmptyResponse
		case a.persona.Validator != nil && !a.persona.Validator(text):
			reason = domain.ReasonValidation
		}
	}

	out := AgentOutput{
		Result: domain.AgentResult{
			AgentName: a.persona.Name,
			Role:      a.persona.Role,
		},
		Elapsed: elapsed,
	}

	if reason != "" {
		switch {
		case reason == domain.ReasonOffline:
			log.Debug("generator offline, using fallback")
		case err != nil:
			log.Warn("agent generation failed, using fallback", "reason", reason, "error", err, "elapsed_ms", elapsed.Milliseconds())
		default:
			log.Warn("agent output rejected, using fallback", "reason", reason, "elapsed_ms", elapsed.Milliseconds())
		}
		out.Result.Advice = a.fallbacks.FallbackFor(a.persona.Name)
		out.Result.Source = domain.SourceFallback
		out.FailureReason = reason
	} else {
		log.Info("agent generation succeeded", "elapsed_ms", elapsed.Milliseconds())
		out.Result.Advice = text
		out.Result.Source = domain.SourceLive
	}

	span.SetAttributes(
		attribute.String("source", string(out.Result.Source)),
		attribute.String("reason", reason),
	)
	return out
}
