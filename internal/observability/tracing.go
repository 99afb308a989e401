package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const ServiceName = "breakup-recovery-agent"

// TracingProvider owns the process TracerProvider. When disabled, tracers
// come from the global no-op provider.
type TracingProvider struct {
	tp      *sdktrace.TracerProvider
	enabled bool
}

// NewTracingProvider exports spans over OTLP/gRPC to endpoint when enabled.
func NewTracingProvider(ctx context.Context, enabled bool, endpoint string) (*TracingProvider, error) {
	log := Logger().With("component", "tracing")
	if !enabled {
		log.Info("tracing disabled")
		return &TracingProvider{}, nil
	}
	if endpoint == "" {
		return nil, fmt.Errorf("tracing enabled but endpoint not configured")
	}

	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	exporter, err := otlptracegrpc.New(dialCtx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	)
	if err != nil {
		return nil, fmt.Errorf("create OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(ServiceName)))
	if err != nil {
		return nil, fmt.Errorf("create tracing resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	log.Info("tracing initialized", "endpoint", endpoint)
	return &TracingProvider{tp: tp, enabled: true}, nil
}

// Tracer returns a named tracer from the global provider.
func (p *TracingProvider) Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

// Shutdown flushes pending spans.
func (p *TracingProvider) Shutdown(ctx context.Context) error {
	if !p.enabled {
		return nil
	}
	if err := p.tp.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown tracer provider: %w", err)
	}
	return nil
}
