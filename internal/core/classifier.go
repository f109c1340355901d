// ABOUTME: Classifier maps raw utterances to intents by ordered keyword matching
// ABOUTME: First-declared intent wins ties; no match falls through to complex
package core

import (
	"strings"

	"github.com/harper/jarvis-standalone/internal/models"
)

// intentRule binds one intent to the substrings that trigger it.
type intentRule struct {
	intent   models.Intent
	keywords []string
}

// Classifier tags utterances with an intent from a closed set. The rule
// order below is fixed and part of the contract: when an utterance contains
// keywords from several intents, the first-declared intent wins. Changing
// the order changes observable routing behavior.
type Classifier struct {
	rules []intentRule
}

// NewClassifier creates a Classifier with the default keyword rules.
func NewClassifier() *Classifier {
	return &Classifier{
		rules: []intentRule{
			{
				intent:   models.IntentGreeting,
				keywords: []string{"hello", "hi", "hey", "greetings", "good morning", "good afternoon", "good evening"},
			},
			{
				intent:   models.IntentTime,
				keywords: []string{"time", "clock", "what time", "current time"},
			},
			{
				intent:   models.IntentDate,
				keywords: []string{"date", "today", "what day", "current date"},
			},
			{
				intent:   models.IntentStatus,
				keywords: []string{"status", "how are you", "are you okay", "system status"},
			},
			{
				intent:   models.IntentThanks,
				keywords: []string{"thank you", "thanks", "good job", "well done", "excellent"},
			},
		},
	}
}

// Classify returns the first intent whose keywords appear as substrings of
// the lower-cased utterance, or IntentComplex when nothing matches.
// Classification never fails: complex is itself a valid outcome.
func (c *Classifier) Classify(text string) models.Intent {
	lowered := strings.ToLower(strings.TrimSpace(text))

	for _, rule := range c.rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.intent
			}
		}
	}

	return models.IntentComplex
}
