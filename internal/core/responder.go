// ABOUTME: BuiltinResponder produces canned or clock-derived replies for non-complex intents
// ABOUTME: Clock and random source are injected so tests can pin selection
package core

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/harper/jarvis-standalone/internal/models"
)

// cannedResponses holds the fixed reply pools for the randomly selected
// intents. time and date are computed, not pooled.
var cannedResponses = map[models.Intent][]string{
	models.IntentGreeting: {
		"Good day! JARVIS at your service. How may I assist you?",
		"Hello! I'm online and ready to help. What can I do for you?",
		"Greetings! Your personal AI assistant is active. How can I help?",
		"Welcome back! JARVIS reporting for duty. What shall we work on today?",
	},
	models.IntentStatus: {
		"All systems operational, sir. Running at optimal performance.",
		"I'm functioning perfectly, thank you for asking. Ready to assist.",
		"System status: Green. All modules online and responsive.",
		"Operating at full capacity. How may I be of service?",
	},
	models.IntentThanks: {
		"You're quite welcome. Always happy to assist.",
		"My pleasure, sir. Is there anything else you need?",
		"Glad I could help. I'm here whenever you need me.",
		"Thank you. I do try my best to be useful.",
	},
}

// Responder answers builtin intents without touching the model fallback.
type Responder struct {
	now func() time.Time
	rng *rand.Rand
}

// NewResponder creates a Responder using the system clock and a
// time-seeded random source.
func NewResponder() *Responder {
	return NewResponderWith(time.Now, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewResponderWith creates a Responder with an injected clock and random
// source, for deterministic tests.
func NewResponderWith(now func() time.Time, rng *rand.Rand) *Responder {
	return &Responder{now: now, rng: rng}
}

// Respond returns a reply for a builtin intent. Defined only for
// non-complex intents; complex utterances belong to the fallback client.
func (r *Responder) Respond(intent models.Intent) string {
	switch intent {
	case models.IntentTime:
		return fmt.Sprintf("The current time is %s, sir.", r.now().Format("03:04 PM"))
	case models.IntentDate:
		return fmt.Sprintf("Today is %s.", r.now().Format("Monday, January 2, 2006"))
	}

	pool := cannedResponses[intent]
	if len(pool) == 0 {
		return "I'm not sure how to respond to that."
	}
	return pool[r.rng.Intn(len(pool))]
}

// Responses returns the fixed reply pool for an intent, or nil for
// computed and complex intents. Used by tests and diagnostics to assert
// membership rather than exact strings.
func Responses(intent models.Intent) []string {
	pool := cannedResponses[intent]
	out := make([]string, len(pool))
	copy(out, pool)
	return out
}
