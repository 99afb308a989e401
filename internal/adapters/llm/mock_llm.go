package llm

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/PabloGalante/recovery-agent/internal/domain"
)

// MockResponse is a scripted answer for one agent.
type MockResponse struct {
	Text  string
	Err   error
	Delay time.Duration
}

// MockLLM is a domain.Generator for local runs and tests. Agents without a
// scripted response get an echo reply.
type MockLLM struct {
	mu        sync.Mutex
	responses map[string]MockResponse
	calls     map[string]int
}

func NewMockLLM() *MockLLM {
	return &MockLLM{
		responses: make(map[string]MockResponse),
		calls:     make(map[string]int),
	}
}

// Script sets the response returned for agentName.
func (m *MockLLM) Script(agentName string, resp MockResponse) *MockLLM {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[agentName] = resp
	return m
}

func (m *MockLLM) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	m.mu.Lock()
	m.calls[req.AgentName]++
	resp, scripted := m.responses[req.AgentName]
	m.mu.Unlock()

	if !scripted {
		return fmt.Sprintf("I hear you. You said %q. Tell me a bit more about how that makes you feel.", req.UserMessage), nil
	}

	if resp.Delay > 0 {
		select {
		case <-time.After(resp.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if resp.Err != nil {
		return "", resp.Err
	}
	return resp.Text, nil
}

// Calls returns the total number of Generate calls.
func (m *MockLLM) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

// CallsFor returns the number of Generate calls made for agentName.
func (m *MockLLM) CallsFor(agentName string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[agentName]
}
