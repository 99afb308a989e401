package agentflow

import "github.com/PabloGalante/recovery-agent/internal/domain"

const (
	TherapistAgentName     = "Therapist Agent"
	ClosureAgentName       = "Closure Agent"
	RoutinePlannerName     = "Routine Planner Agent"
	BrutalHonestyAgentName = "Brutal Honesty Agent"
)

// Persona is one named prompt template plus its sampling parameters.
type Persona struct {
	Name         string
	Role         string
	SystemPrompt string
	Params       domain.SamplingParams

	// Validator is optional. A rejected live output is replaced by a fallback.
	Validator func(text string) bool

	Fallbacks []string
}

func float32Ptr(v float32) *float32 { return &v }

// DefaultPersonas returns the fixed persona registry in plan order. Every
// call builds fresh values, so callers cannot mutate the registry.
func DefaultPersonas() []Persona {
	return []Persona{
		{
			Name:         TherapistAgentName,
			Role:         "Empathetic support and coping strategies.",
			SystemPrompt: therapistSystemPrompt + safetyBoundaries,
			Params:       domain.SamplingParams{Temperature: 0.7, MaxTokens: 200},
			Fallbacks:    clone(therapistFallbacks),
		},
		{
			Name:         ClosureAgentName,
			Role:         "Generates emotional messages you shouldn't send (for catharsis).",
			SystemPrompt: closureSystemPrompt + safetyBoundaries,
			Params:       domain.SamplingParams{Temperature: 0.8, MaxTokens: 200},
			Fallbacks:    clone(closureFallbacks),
		},
		{
			Name:         RoutinePlannerName,
			Role:         "Suggests daily routine and healthy distractions.",
			SystemPrompt: routineSystemPrompt + safetyBoundaries,
			Params:       domain.SamplingParams{Temperature: 0.6, MaxTokens: 400, TopP: float32Ptr(0.9)},
			Validator:    ValidateRoutine,
			Fallbacks:    clone(routineFallbacks),
		},
		{
			Name:         BrutalHonestyAgentName,
			Role:         "Provides direct, no-nonsense feedback.",
			SystemPrompt: brutalHonestySystemPrompt + safetyBoundaries,
			Params:       domain.SamplingParams{Temperature: 0.5, MaxTokens: 250, TopP: float32Ptr(0.85)},
			Validator:    ValidateBrutalHonesty,
			Fallbacks:    clone(brutalHonestyFallbacks),
		},
	}
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
