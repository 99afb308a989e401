package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/recovery-agent/internal/domain"
)

func runRoot(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	return &out, rootCmd.Execute()
}

func TestPlanCommandWithMockLLM(t *testing.T) {
	t.Setenv("RECOVERY_USE_MOCK_LLM", "1")
	t.Setenv("RECOVERY_LLM_PROVIDER", "")

	out, err := runRoot(t, "plan", "I", "just", "broke", "up")
	require.NoError(t, err)

	var plan domain.RecoveryPlan
	require.NoError(t, json.Unmarshal(out.Bytes(), &plan))
	require.Len(t, plan.Agents, 4)
	assert.Equal(t, "Therapist Agent", plan.Agents[0].AgentName)
	assert.Equal(t, domain.SourceLive, plan.Agents[0].Source)
	assert.Contains(t, plan.Agents[0].Advice, "I just broke up")
	assert.NotEmpty(t, plan.Summary)
}

func TestPlanCommandRejectsBlankInput(t *testing.T) {
	t.Setenv("RECOVERY_USE_MOCK_LLM", "1")
	t.Setenv("RECOVERY_LLM_PROVIDER", "")

	_, err := runRoot(t, "plan", "   ")
	assert.ErrorIs(t, err, errEmptyFeelings)
}

func TestPlanCommandRequiresArgument(t *testing.T) {
	_, err := runRoot(t, "plan")
	assert.Error(t, err)
}
