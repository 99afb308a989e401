package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/recovery-agent/internal/domain"
)

func TestMockLLM(t *testing.T) {
	boom := errors.New("boom")
	m := NewMockLLM().
		Script("a", MockResponse{Text: "scripted"}).
		Script("b", MockResponse{Err: boom})

	text, err := m.Generate(context.Background(), domain.GenerationRequest{AgentName: "a"})
	require.NoError(t, err)
	assert.Equal(t, "scripted", text)

	_, err = m.Generate(context.Background(), domain.GenerationRequest{AgentName: "b"})
	assert.ErrorIs(t, err, boom)

	text, err = m.Generate(context.Background(), domain.GenerationRequest{AgentName: "c", UserMessage: "sad"})
	require.NoError(t, err)
	assert.Contains(t, text, `"sad"`)

	assert.Equal(t, 3, m.Calls())
	assert.Equal(t, 1, m.CallsFor("a"))
}

func TestMockLLMDelayHonorsContext(t *testing.T) {
	m := NewMockLLM().Script("slow", MockResponse{Text: "late", Delay: time.Second})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := m.Generate(ctx, domain.GenerationRequest{AgentName: "slow"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
