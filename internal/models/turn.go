// ABOUTME: Turn represents a single conversation exchange between user and assistant
// ABOUTME: Core data structure for the session memory window
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Source identifies which path produced a response.
type Source string

const (
	SourceBuiltin Source = "builtin"
	SourceModel   Source = "model"
)

// Turn is one recorded user/assistant exchange plus metadata. Turns are
// immutable after creation and owned exclusively by the session memory.
type Turn struct {
	TurnID      string        `json:"turn_id"`
	Timestamp   time.Time     `json:"timestamp"`
	UserMessage string        `json:"user_message"`
	AIResponse  string        `json:"ai_response"`
	Intent      Intent        `json:"intent"`
	Source      Source        `json:"source"`
	Duration    time.Duration `json:"duration"`
	Errored     bool          `json:"errored,omitempty"`
}

// NewTurn creates a new Turn with validation
func NewTurn(userMessage, aiResponse string, intent Intent, source Source, duration time.Duration) (*Turn, error) {
	if strings.TrimSpace(userMessage) == "" {
		return nil, errors.New("user message cannot be empty")
	}
	return &Turn{
		TurnID:      generateTurnID(),
		Timestamp:   time.Now().UTC(),
		UserMessage: userMessage,
		AIResponse:  aiResponse,
		Intent:      intent,
		Source:      source,
		Duration:    duration,
	}, nil
}

// generateTurnID generates a unique turn identifier
func generateTurnID() string {
	return fmt.Sprintf("turn_%s_%s", time.Now().Format("20060102_150405"), uuid.New().String()[:8])
}
