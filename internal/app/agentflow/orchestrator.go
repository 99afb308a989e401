package agentflow

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/PabloGalante/recovery-agent/internal/domain"
	"github.com/PabloGalante/recovery-agent/internal/observability"
)

// Orchestrator runs every persona agent for one request and assembles the
// recovery plan.
type Orchestrator struct {
	agents      []*PersonaAgent
	concurrency int
	metrics     *observability.Metrics
	tracer      trace.Tracer
}

type Option func(*options)

type options struct {
	concurrency int
	rnd         Rand
	metrics     *observability.Metrics
	tracer      trace.Tracer
}

// WithConcurrency caps parallel agent runs. 1 runs them sequentially.
func WithConcurrency(n int) Option {
	return func(o *options) { o.concurrency = n }
}

// WithRand injects the fallback randomness.
func WithRand(r Rand) Option {
	return func(o *options) { o.rnd = r }
}

func WithMetrics(m *observability.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func WithTracer(t trace.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// NewOrchestrator wires one PersonaAgent per persona, keeping their order.
func NewOrchestrator(llm domain.Generator, personas []Persona, opts ...Option) *Orchestrator {
	o := options{
		concurrency: len(personas),
		tracer:      otel.Tracer("github.com/PabloGalante/recovery-agent/agentflow"),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.concurrency < 1 {
		o.concurrency = 1
	}

	fallbacks := NewFallbackResolver(personas, o.rnd)

	agents := make([]*PersonaAgent, 0, len(personas))
	for _, p := range personas {
		agents = append(agents, NewPersonaAgent(p, llm, fallbacks, o.tracer))
	}

	return &Orchestrator{
		agents:      agents,
		concurrency: o.concurrency,
		metrics:     o.metrics,
		tracer:      o.tracer,
	}
}

// NewDefaultOrchestrator uses the built-in persona registry.
func NewDefaultOrchestrator(llm domain.Generator, opts ...Option) *Orchestrator {
	return NewOrchestrator(llm, DefaultPersonas(), opts...)
}

// AgentCount is the number of results every plan contains.
func (o *Orchestrator) AgentCount() int {
	return len(o.agents)
}

// Personas returns the registry this orchestrator runs, in plan order.
func (o *Orchestrator) Personas() []Persona {
	out := make([]Persona, 0, len(o.agents))
	for _, ag := range o.agents {
		p := ag.persona
		p.Fallbacks = clone(p.Fallbacks)
		out = append(out, p)
	}
	return out
}

// BuildPlan has no failure path. Agents run concurrently and each writes
// only its own slot, so the plan keeps registry order whatever the
// completion order.
func (o *Orchestrator) BuildPlan(ctx context.Context, in domain.UserInput) domain.RecoveryPlan {
	ctx, span := o.tracer.Start(ctx, "agentflow.BuildPlan",
		trace.WithAttributes(attribute.Int("agents_count", len(o.agents))))
	defer span.End()

	log := observability.LoggerFromContext(ctx)
	log.Info("orchestrator started", "agents_count", len(o.agents), "concurrency", o.concurrency)
	start := time.Now()

	outputs := make([]AgentOutput, len(o.agents))
	agentIn := AgentInput{UserMessage: in.FeelingsDescription}

	var g errgroup.Group
	g.SetLimit(o.concurrency)
	for i, ag := range o.agents {
		g.Go(func() error {
			outputs[i] = ag.Run(ctx, agentIn)
			return nil
		})
	}
	_ = g.Wait() // agents never return errors

	results := make([]domain.AgentResult, len(outputs))
	fallbackCount := 0
	for i, out := range outputs {
		results[i] = out.Result
		o.record(out)
		if out.Result.Source == domain.SourceFallback {
			fallbackCount++
		}
	}

	plan := domain.RecoveryPlan{
		Summary: Summarize(results),
		Agents:  results,
	}

	elapsed := time.Since(start)
	if o.metrics != nil {
		o.metrics.PlanDuration.Observe(elapsed.Seconds())
	}
	span.SetAttributes(attribute.Int("fallback_count", fallbackCount))
	log.Info("orchestrator end", "fallback_count", fallbackCount, "elapsed_ms", elapsed.Milliseconds())

	return plan
}

func (o *Orchestrator) record(out AgentOutput) {
	if o.metrics == nil {
		return
	}
	name := out.Result.AgentName
	o.metrics.AgentResults.WithLabelValues(name, string(out.Result.Source)).Inc()
	o.metrics.GenerationDuration.WithLabelValues(name).Observe(out.Elapsed.Seconds())
	if out.FailureReason != "" {
		o.metrics.AgentFailures.WithLabelValues(name, out.FailureReason).Inc()
	}
}
