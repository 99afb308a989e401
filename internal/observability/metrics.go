package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for plan building.
type Metrics struct {
	AgentResults       *prometheus.CounterVec   // by agent and source (live|fallback)
	AgentFailures      *prometheus.CounterVec   // by agent and reason
	GenerationDuration *prometheus.HistogramVec // by agent
	PlanDuration       prometheus.Histogram
	HTTPRequests       *prometheus.CounterVec // by route and status code
}

// NewMetrics creates and registers all collectors on reg. Tests pass a fresh
// prometheus.NewRegistry() so registrations never collide.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AgentResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "recovery_agent_results_total",
			Help: "Agent results returned, by agent and source",
		}, []string{"agent", "source"}),
		AgentFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "recovery_agent_failures_total",
			Help: "Live generations replaced by a fallback, by agent and reason",
		}, []string{"agent", "reason"}),
		GenerationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "recovery_generation_duration_seconds",
			Help:    "Latency of one generation call",
			Buckets: prometheus.DefBuckets,
		}, []string{"agent"}),
		PlanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "recovery_plan_duration_seconds",
			Help:    "Latency of building a full recovery plan",
			Buckets: prometheus.DefBuckets,
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "recovery_http_requests_total",
			Help: "HTTP requests served, by route and status code",
		}, []string{"route", "code"}),
	}

	reg.MustRegister(
		m.AgentResults,
		m.AgentFailures,
		m.GenerationDuration,
		m.PlanDuration,
		m.HTTPRequests,
	)
	return m
}
