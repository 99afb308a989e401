package agentflow

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PabloGalante/recovery-agent/internal/domain"
)

func TestSummarizeAllThemes(t *testing.T) {
	results := []domain.AgentResult{
		{AgentName: TherapistAgentName, Advice: "Your feelings are VALID."},
		{AgentName: ClosureAgentName, Advice: "A Message Draft for Emotional Release: ..."},
		{AgentName: RoutinePlannerName, Advice: "Morning: walk. Evening: read."},
		{AgentName: BrutalHonestyAgentName, Advice: "The reality is it's over."},
	}

	got := Summarize(results)
	assert.Contains(t, got, "emotional validation, a cathartic outlet, daily structure and honest perspective")
}

func TestSummarizePartialThemes(t *testing.T) {
	results := []domain.AgentResult{
		{AgentName: TherapistAgentName, Advice: "I understand."},
		{AgentName: RoutinePlannerName, Advice: "Morning only."},
		{AgentName: BrutalHonestyAgentName, Advice: "Truth hurts."},
	}

	got := Summarize(results)
	assert.Contains(t, got, "emotional validation and honest perspective.")
	assert.NotContains(t, got, "daily structure")
}

func TestSummarizeNoThemes(t *testing.T) {
	got := Summarize([]domain.AgentResult{{AgentName: TherapistAgentName, Advice: "Hello."}})
	assert.Contains(t, got, noThemeSummary)
	assert.Contains(t, Summarize(nil), noThemeSummary)
}

func TestJoinThemes(t *testing.T) {
	assert.Equal(t, "a", joinThemes([]string{"a"}))
	assert.Equal(t, "a and b", joinThemes([]string{"a", "b"}))
	assert.Equal(t, "a, b and c", joinThemes([]string{"a", "b", "c"}))
}

func TestEveryFallbackCarriesItsTheme(t *testing.T) {
	themes := make(map[string]summaryTheme, len(summaryThemes))
	for _, th := range summaryThemes {
		themes[th.agent] = th
	}

	for _, p := range DefaultPersonas() {
		th, ok := themes[p.Name]
		if !assert.True(t, ok, "no summary theme for %s", p.Name) {
			continue
		}
		for i, fb := range p.Fallbacks {
			assert.True(t, th.matches(strings.ToLower(fb)), "%s fallback #%d misses theme %q", p.Name, i, th.name)
		}
	}
}
