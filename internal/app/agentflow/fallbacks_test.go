package agentflow

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedRand int

func (f fixedRand) IntN(n int) int { return int(f) % n }

func TestFallbackForIsDeterministicWithInjectedRand(t *testing.T) {
	personas := DefaultPersonas()
	r := NewFallbackResolver(personas, fixedRand(1))

	assert.Equal(t, therapistFallbacks[1], r.FallbackFor(TherapistAgentName))
	assert.Equal(t, routineFallbacks[1], r.FallbackFor(RoutinePlannerName))
	assert.Equal(t, brutalHonestyFallbacks[1], r.FallbackFor(BrutalHonestyAgentName))
}

func TestFallbackForUnknownPersona(t *testing.T) {
	r := NewFallbackResolver(DefaultPersonas(), nil)
	assert.Equal(t, genericFallback, r.FallbackFor("Astrology Agent"))
}

func TestFallbackForSingleOption(t *testing.T) {
	r := NewFallbackResolver([]Persona{{Name: "solo", Fallbacks: []string{"only one"}}}, fixedRand(7))
	assert.Equal(t, "only one", r.FallbackFor("solo"))
}

func TestFallbackForConcurrentDefaultRand(t *testing.T) {
	personas := DefaultPersonas()
	r := NewFallbackResolver(personas, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Contains(t, closureFallbacks, r.FallbackFor(ClosureAgentName))
		}()
	}
	wg.Wait()
}
