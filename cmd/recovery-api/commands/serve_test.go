package commands

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeShutsDownWhenContextIsCancelled(t *testing.T) {
	t.Setenv("RECOVERY_PORT", "0")
	t.Setenv("RECOVERY_USE_MOCK_LLM", "1")
	t.Setenv("RECOVERY_LLM_PROVIDER", "")
	t.Setenv("RECOVERY_TRACING_ENABLED", "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	serveCmd.SetContext(ctx)
	t.Cleanup(func() { serveCmd.SetContext(context.Background()) })

	done := make(chan error, 1)
	go func() {
		_, err := runRoot(t, "serve")
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("serve did not return after its context was cancelled")
	}
}

func TestServeFailsOnInvalidConfig(t *testing.T) {
	t.Setenv("RECOVERY_AGENT_CONCURRENCY", "0")

	_, err := runRoot(t, "serve")
	assert.Error(t, err)
}
