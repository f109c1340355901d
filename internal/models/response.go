// ABOUTME: Response carries formatted reply text plus per-call metadata
// ABOUTME: ExportDocument is the JSON shape returned by history export
package models

import "time"

// Metadata describes how a response was produced.
type Metadata struct {
	Intent         Intent    `json:"intent"`
	Source         Source    `json:"source"`
	Timestamp      time.Time `json:"timestamp"`
	ProcessingTime float64   `json:"processing_time"` // seconds, respond step only
	Error          bool      `json:"error,omitempty"`
}

// Response is what the engine hands back to the caller for one utterance.
type Response struct {
	Text     string   `json:"text"`
	Metadata Metadata `json:"metadata"`
}

// ExportDocument is the JSON-serializable snapshot of retained history.
type ExportDocument struct {
	ExportedAt        time.Time `json:"exported_at"`
	SessionID         string    `json:"session_id"`
	TotalInteractions int       `json:"total_interactions"`
	Turns             []Turn    `json:"turns"`
}

// SessionStats summarizes engine activity since session start.
type SessionStats struct {
	SessionID       string    `json:"session_id"`
	SessionStart    time.Time `json:"session_start"`
	UptimeSeconds   float64   `json:"uptime_seconds"`
	TotalQueries    int       `json:"total_queries"`
	RetainedTurns   int       `json:"retained_turns"`
	LastInteraction time.Time `json:"last_interaction,omitzero"`
	BackendOnline   bool      `json:"backend_online"`
}
