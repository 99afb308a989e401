package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/recovery-agent/internal/domain"
)

// recordingServer answers every request with status and body, and keeps the
// last decoded request body.
type recordingServer struct {
	*httptest.Server
	hits atomic.Int32
	last atomic.Value // map[string]any
	path atomic.Value // string
}

func newRecordingServer(t *testing.T, status int, body string) *recordingServer {
	t.Helper()
	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.hits.Add(1)
		rs.path.Store(r.URL.Path)

		raw, _ := io.ReadAll(r.Body)
		var decoded map[string]any
		if err := json.Unmarshal(raw, &decoded); err == nil {
			rs.last.Store(decoded)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(rs.Close)
	return rs
}

func (rs *recordingServer) lastBody(t *testing.T) map[string]any {
	t.Helper()
	body, ok := rs.last.Load().(map[string]any)
	require.True(t, ok, "no JSON request body recorded")
	return body
}

func topP(v float32) *float32 { return &v }

var routineRequest = domain.GenerationRequest{
	AgentName:    "Routine Planner Agent",
	SystemPrompt: "You are the Routine Planner Agent.",
	UserMessage:  "I can't get out of bed since the breakup",
	Params:       domain.SamplingParams{Temperature: 0.6, MaxTokens: 400, TopP: topP(0.9)},
}

var therapistRequest = domain.GenerationRequest{
	AgentName:    "Therapist Agent",
	SystemPrompt: "You are the Therapist Agent.",
	UserMessage:  "I feel lost",
	Params:       domain.SamplingParams{Temperature: 0.7, MaxTokens: 200},
}

const anthropicOK = `{"id":"msg_1","type":"message","role":"assistant","model":"claude-3-5-haiku-latest",
"content":[{"type":"text","text":" Morning: walk. "}],"stop_reason":"end_turn",
"usage":{"input_tokens":10,"output_tokens":5}}`

const geminiOK = `{"candidates":[{"content":{"role":"model","parts":[{"text":" Morning: walk. "}]},"finishReason":"STOP"}]}`

func TestAnthropicBackendSendsSamplingParams(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, anthropicOK)

	b, err := NewAnthropicBackend(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	text, err := b.Complete(context.Background(), routineRequest)
	require.NoError(t, err)
	assert.Equal(t, "Morning: walk.", text)
	assert.True(t, strings.HasSuffix(srv.path.Load().(string), "/v1/messages"))

	body := srv.lastBody(t)
	// exact decimals: float32 values are widened without binary noise
	assert.Equal(t, 0.6, body["temperature"])
	assert.Equal(t, 0.9, body["top_p"])
	assert.Equal(t, float64(400), body["max_tokens"])
	assert.Equal(t, "claude-3-5-haiku-latest", body["model"])

	system, ok := body["system"].([]any)
	require.True(t, ok)
	require.Len(t, system, 1)
	assert.Equal(t, "You are the Routine Planner Agent.", system[0].(map[string]any)["text"])
}

func TestAnthropicBackendOmitsUnsetTopP(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, anthropicOK)

	b, err := NewAnthropicBackend(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = b.Complete(context.Background(), therapistRequest)
	require.NoError(t, err)

	body := srv.lastBody(t)
	assert.NotContains(t, body, "top_p")
	assert.Equal(t, 0.7, body["temperature"])
	assert.Equal(t, float64(200), body["max_tokens"])
}

func TestGeminiBackendSendsSamplingParams(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, geminiOK)

	b, err := NewGeminiBackend(context.Background(), Config{APIKey: "test-key", Model: "gemini-2.0-flash", BaseURL: srv.URL})
	require.NoError(t, err)

	text, err := b.Complete(context.Background(), routineRequest)
	require.NoError(t, err)
	assert.Equal(t, "Morning: walk.", text)
	assert.Contains(t, srv.path.Load().(string), "gemini-2.0-flash:generateContent")

	body := srv.lastBody(t)
	gen, ok := body["generationConfig"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 0.6, gen["temperature"], 1e-6)
	assert.InDelta(t, 0.9, gen["topP"], 1e-6)
	assert.Equal(t, float64(400), gen["maxOutputTokens"])

	sys, ok := body["systemInstruction"].(map[string]any)
	require.True(t, ok)
	parts := sys["parts"].([]any)
	require.NotEmpty(t, parts)
	assert.Equal(t, "You are the Routine Planner Agent.", parts[0].(map[string]any)["text"])
}

func TestGeminiBackendOmitsUnsetTopP(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, geminiOK)

	b, err := NewGeminiBackend(context.Background(), Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = b.Complete(context.Background(), therapistRequest)
	require.NoError(t, err)

	gen, ok := srv.lastBody(t)["generationConfig"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, gen, "topP")
	assert.InDelta(t, 0.7, gen["temperature"], 1e-6)
}

func TestProviderFailureIsSingleAttempt(t *testing.T) {
	for _, provider := range []string{ProviderAnthropic, ProviderGemini} {
		t.Run(provider, func(t *testing.T) {
			srv := newRecordingServer(t, http.StatusServiceUnavailable,
				`{"error":{"code":503,"message":"overloaded","status":"UNAVAILABLE","type":"overloaded_error"}}`)

			c := NewClient(context.Background(), Config{
				Provider: provider,
				APIKey:   "test-key",
				BaseURL:  srv.URL,
			})
			require.True(t, c.Enabled())

			_, err := c.Generate(context.Background(), therapistRequest)
			require.Error(t, err)
			assert.Equal(t, domain.ReasonTransport, domain.FailureReason(err))
			assert.Equal(t, int32(1), srv.hits.Load(), "a failed generation must not be retried")
		})
	}
}
