package domain

// UserInput is the only thing a caller sends us.
type UserInput struct {
	FeelingsDescription string
}

// ResultSource tells whether an agent's advice was generated live or
// replaced by one of its pre-written fallbacks.
type ResultSource string

const (
	SourceLive     ResultSource = "live"
	SourceFallback ResultSource = "fallback"
)

// AgentResult is the response of one persona for one request.
type AgentResult struct {
	AgentName string       `json:"agent_name"`
	Role      string       `json:"role"`
	Advice    string       `json:"advice"`
	Source    ResultSource `json:"source,omitempty"`
}

// RecoveryPlan aggregates one AgentResult per persona, in registry order,
// plus a summary derived from all of them.
type RecoveryPlan struct {
	Summary string        `json:"summary"`
	Agents  []AgentResult `json:"agents"`
}

// SamplingParams are the generation knobs a persona sends with every call.
type SamplingParams struct {
	Temperature float32
	MaxTokens   int32
	TopP        *float32 // optional nucleus-sampling cutoff
}
