// ABOUTME: Intent is the closed set of categories an utterance can be routed to
// ABOUTME: Complex is the catch-all assigned only when no keyword matches
package models

import "fmt"

// Intent is a closed category label assigned to an utterance.
type Intent string

const (
	IntentGreeting Intent = "greeting"
	IntentTime     Intent = "time"
	IntentDate     Intent = "date"
	IntentStatus   Intent = "status"
	IntentThanks   Intent = "thanks"
	// IntentComplex is never matched by a keyword; it is assigned by
	// exhaustion and routes the utterance to the model fallback.
	IntentComplex Intent = "complex"
)

// BuiltinIntents lists the keyword-matched intents in declaration order.
// The order is part of the classifier contract: when an utterance contains
// keywords from more than one intent, the first-declared intent wins.
func BuiltinIntents() []Intent {
	return []Intent{IntentGreeting, IntentTime, IntentDate, IntentStatus, IntentThanks}
}

// IsBuiltin reports whether the intent is answered locally without the
// model fallback.
func (i Intent) IsBuiltin() bool {
	return i != IntentComplex
}

// ParseIntent converts a string to an Intent, rejecting unknown labels.
func ParseIntent(s string) (Intent, error) {
	switch Intent(s) {
	case IntentGreeting, IntentTime, IntentDate, IntentStatus, IntentThanks, IntentComplex:
		return Intent(s), nil
	}
	return "", fmt.Errorf("unknown intent %q", s)
}
