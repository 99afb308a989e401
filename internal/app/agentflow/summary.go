package agentflow

import (
	"strings"

	"github.com/PabloGalante/recovery-agent/internal/domain"
)

type summaryTheme struct {
	agent string
	name  string
	// anyOf matches when at least one keyword is present, allOf when every
	// keyword is.
	anyOf []string
	allOf []string
}

var summaryThemes = []summaryTheme{
	{agent: TherapistAgentName, name: "emotional validation", anyOf: []string{"understand", "valid"}},
	{agent: ClosureAgentName, name: "a cathartic outlet", anyOf: []string{"message", "release"}},
	{agent: RoutinePlannerName, name: "daily structure", allOf: []string{"morning", "evening"}},
	{agent: BrutalHonestyAgentName, name: "honest perspective", anyOf: []string{"truth", "reality"}},
}

const noThemeSummary = "comprehensive support"

// Summarize is a cosmetic keyword heuristic over the agents' advice.
func Summarize(results []domain.AgentResult) string {
	advice := make(map[string]string, len(results))
	for _, r := range results {
		advice[r.AgentName] = strings.ToLower(r.Advice)
	}

	var matched []string
	for _, th := range summaryThemes {
		text, ok := advice[th.agent]
		if ok && th.matches(text) {
			matched = append(matched, th.name)
		}
	}

	themes := noThemeSummary
	if len(matched) > 0 {
		themes = joinThemes(matched)
	}
	return "Your recovery plan combines " + themes + ". Take each agent's advice at your own pace, one step at a time."
}

func (th summaryTheme) matches(text string) bool {
	for _, kw := range th.allOf {
		if !strings.Contains(text, kw) {
			return false
		}
	}
	if len(th.anyOf) == 0 {
		return len(th.allOf) > 0
	}
	for _, kw := range th.anyOf {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// joinThemes renders "a", "a and b", "a, b and c".
func joinThemes(themes []string) string {
	if len(themes) == 1 {
		return themes[0]
	}
	return strings.Join(themes[:len(themes)-1], ", ") + " and " + themes[len(themes)-1]
}
