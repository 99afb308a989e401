package agentflow

import (
	"math/rand/v2"
	"sync"
)

var therapistFallbacks = []string{
	"I hear you, and I understand how heavy this feels. Remember to be gentle with yourself today. Even small acts of self-care, like taking a walk or talking to a friend, can help.",
	"I understand this is a challenging time. Please know your feelings are valid and it's okay to take things one moment at a time.",
	"I understand you're going through a difficult time. Please know that your feelings are valid and it's okay to grieve. Today, try one small comforting thing: a warm drink, a short walk, or ten quiet minutes for yourself.",
}

var closureFallbacks = []string{
	"A Message Draft for Emotional Release: I'm writing this to release my feelings, not to send. This is my raw truth right now...",
	"A Message Draft for Emotional Release: This is my unsent letter, my way of letting these emotions flow onto the page instead of keeping them inside...",
	"A Message Draft for Emotional Release: I keep replaying every conversation and wondering where I lost you. I miss you and I'm angry at you in the same breath. I wanted us to work so badly, and I hate that I still reach for my phone to tell you things.",
}

var routineFallbacks = []string{
	"Morning:\n- 8:00 Drink a glass of water and open the curtains.\n- 8:30 Take a 20-minute walk outside.\n\n" +
		"Afternoon:\n- 13:00 Eat a proper lunch away from screens.\n- 15:00 Spend 30 minutes on a hobby or a small task you've been postponing.\n\n" +
		"Evening:\n- 19:00 Call or message a friend.\n- 22:00 Phone away, read or journal for 15 minutes before sleep.\n\n" +
		"Key Principles:\n- Structure gives your mind something steady to hold on to.\n- Small wins rebuild momentum and confidence.",
	"Morning:\n- 7:30 Stretch for 10 minutes.\n- 8:00 Breakfast and plan three small goals for the day.\n\n" +
		"Afternoon:\n- 12:30 Short walk after lunch.\n- 16:00 Learn something new for 30 minutes.\n\n" +
		"Evening:\n- 18:30 Cook a simple meal.\n- 21:30 Write down one thing that went well today.\n\n" +
		"Key Principles:\n- Consistency matters more than intensity.\n- Keep your hands busy when your thoughts drift back.",
}

var brutalHonestyFallbacks = []string{
	"The truth is the relationship ended for a reason. Stop romanticizing the past; the incompatibility was clear. Replaying it won't change the outcome, so put that energy into your own life today.",
	"Let's be clear: checking their social media keeps the wound open. The reality is you can't heal while you keep watching. Mute them, and give yourself one full week without looking.",
}

const genericFallback = "Take a deep breath. This moment is hard, and you are taking a step by reaching out."

// Rand is the randomness fallbacks are chosen with. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// FallbackResolver picks one pre-written response for a persona. It is the
// only source of randomness in plan building.
type FallbackResolver struct {
	mu        sync.Mutex
	rnd       Rand
	fallbacks map[string][]string
}

// NewFallbackResolver indexes the fallbacks of personas. A nil rnd uses an
// unseeded PCG source.
func NewFallbackResolver(personas []Persona, rnd Rand) *FallbackResolver {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	r := &FallbackResolver{
		rnd:       rnd,
		fallbacks: make(map[string][]string, len(personas)),
	}
	for _, p := range personas {
		r.fallbacks[p.Name] = clone(p.Fallbacks)
	}
	return r
}

// FallbackFor never fails and never touches the network.
func (r *FallbackResolver) FallbackFor(personaName string) string {
	options := r.fallbacks[personaName]
	switch len(options) {
	case 0:
		return genericFallback
	case 1:
		return options[0]
	}

	// *rand.Rand is not safe for concurrent use.
	r.mu.Lock()
	i := r.rnd.IntN(len(options))
	r.mu.Unlock()
	return options[i]
}
