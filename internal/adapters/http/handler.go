package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PabloGalante/recovery-agent/internal/app/recovery"
	"github.com/PabloGalante/recovery-agent/internal/domain"
	"github.com/PabloGalante/recovery-agent/internal/observability"
)

const maxBodyBytes = 64 << 10

type Server struct {
	svc *recovery.Service
}

// NewServer builds the HTTP handler. metrics and gatherer may be nil, in
// which case request counting and /metrics are disabled.
func NewServer(svc *recovery.Service, metrics *observability.Metrics, gatherer prometheus.Gatherer) http.Handler {
	s := &Server{svc: svc}
	mux := http.NewServeMux()

	// / → API info (GET)
	mux.HandleFunc("/", s.handleRoot)

	// /health → liveness (GET)
	mux.HandleFunc("/health", s.handleHealth)

	// /run_agents → build a recovery plan (POST)
	mux.HandleFunc("/run_agents", s.handleRunAgents)

	if gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return chainMiddlewares(mux,
		withMetrics(metrics),
		withLogging,
		withCORS,
		withRequestID,
	)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type runAgentsRequest struct {
	// pointer so a missing field can be told apart from an empty one
	FeelingsDescription *string `json:"feelings_description"`
}

type agentResponse struct {
	AgentName string `json:"agent_name"`
	Role      string `json:"role"`
	Advice    string `json:"advice"`
	Source    string `json:"source,omitempty"`
}

type recoveryPlanResponse struct {
	Summary string          `json:"summary"`
	Agents  []agentResponse `json:"agents"`
}

type infoResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
	Agents    []string          `json:"agents"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Generator string `json:"generator"`
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		notFound(w)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	writeJSON(w, http.StatusOK, infoResponse{
		Message: "Breakup Recovery AI Agent API",
		Endpoints: map[string]string{
			"GET /":           "This info page",
			"GET /health":     "Health check",
			"POST /run_agents": "Run all 4 AI agents with user input",
			"GET /metrics":    "Prometheus metrics",
		},
		Agents: s.svc.AgentDescriptions(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Service:   observability.ServiceName,
		Generator: s.svc.GeneratorStatus(),
	})
}

func (s *Server) handleRunAgents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req runAgentsRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		badRequest(w, "invalid JSON body")
		return
	}

	if req.FeelingsDescription == nil || strings.TrimSpace(*req.FeelingsDescription) == "" {
		unprocessable(w, recovery.ErrMissingFeelings.Error())
		return
	}

	plan, err := s.svc.RunAgents(r.Context(), recovery.RunAgentsInput{
		FeelingsDescription: *req.FeelingsDescription,
	})
	if err != nil {
		if errors.Is(err, recovery.ErrMissingFeelings) {
			unprocessable(w, err.Error())
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecoveryPlanResponse(plan))
}

// ─────────────────────────────────────────────
// Plan Helpers
// ─────────────────────────────────────────────

func toRecoveryPlanResponse(p domain.RecoveryPlan) recoveryPlanResponse {
	agents := make([]agentResponse, 0, len(p.Agents))
	for _, a := range p.Agents {
		agents = append(agents, agentResponse{
			AgentName: a.AgentName,
			Role:      a.Role,
			Advice:    a.Advice,
			Source:    string(a.Source),
		})
	}
	return recoveryPlanResponse{
		Summary: p.Summary,
		Agents:  agents,
	}
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{
		"error": msg,
	})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusBadRequest, msg)
}

func unprocessable(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusUnprocessableEntity, msg)
}

func notFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, "not found")
}

func internalError(w http.ResponseWriter, err error) {
	observability.Logger().Error("internal server error", "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
