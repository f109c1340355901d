// ABOUTME: Engine orchestrates validate, classify, respond, format, and record for each utterance
// ABOUTME: Owns the session memory and degrades fallback failures into apologetic replies
package core

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harper/jarvis-standalone/internal/config"
	"github.com/harper/jarvis-standalone/internal/memory"
	"github.com/harper/jarvis-standalone/internal/models"
)

// CompletionClient is the external collaborator that answers complex
// utterances. The engine only needs a usability signal and a single
// blocking completion call.
type CompletionClient interface {
	Available() bool
	ConnectionError() string
	Complete(ctx context.Context, systemPrompt string, history []models.Turn, utterance string) (string, error)
}

// TurnRecorder receives each recorded turn on a best-effort side channel.
type TurnRecorder interface {
	Record(turn models.Turn)
}

// Engine is the dialogue routing engine for one session. It processes at
// most one utterance at a time; callers must not issue concurrent Process
// calls for the same session.
type Engine struct {
	validator  *Validator
	classifier *Classifier
	responder  *Responder
	memory     *memory.SessionMemory
	client     CompletionClient
	recorder   TurnRecorder

	systemPrompt  string
	historyWindow int

	sessionID    string
	sessionStart time.Time

	mu              sync.Mutex // protects counters read by Stats
	totalQueries    int
	lastInteraction time.Time
}

// NewEngine creates an Engine with exclusive ownership of a fresh session
// memory. recorder may be nil to disable interaction logging.
func NewEngine(cfg *config.Config, client CompletionClient, recorder TurnRecorder) (*Engine, error) {
	mem, err := memory.New(cfg.MemoryCapacity)
	if err != nil {
		return nil, fmt.Errorf("creating session memory: %w", err)
	}

	return &Engine{
		validator:     NewValidator(cfg.MaxInputRunes, cfg.Denylist),
		classifier:    NewClassifier(),
		responder:     NewResponder(),
		memory:        mem,
		client:        client,
		recorder:      recorder,
		systemPrompt:  cfg.SystemPrompt,
		historyWindow: cfg.HistoryWindow,
		sessionID:     uuid.New().String(),
		sessionStart:  time.Now(),
	}, nil
}

// SetResponder replaces the builtin responder (for tests with a pinned
// clock or seeded random source).
func (e *Engine) SetResponder(r *Responder) {
	e.responder = r
}

// SetRecorder attaches an interaction log after construction. Entry points
// use this because the log is keyed by the engine's session ID.
func (e *Engine) SetRecorder(r TurnRecorder) {
	e.recorder = r
}

// SessionID returns the identifier attached to this session's log records.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// Memory returns the engine's session memory.
func (e *Engine) Memory() *memory.SessionMemory {
	return e.memory
}

// Process runs one utterance through the full pipeline and returns the
// formatted response with metadata. Validation failures return a typed
// error and record nothing. Fallback failures degrade into an apologetic
// response with Error metadata; a turn is still recorded so the
// conversation stays auditable. Any unexpected internal fault is caught
// here and converted into a generic apology, so callers always receive a
// well-formed response or a typed validation error.
func (e *Engine) Process(ctx context.Context, utterance string) (resp *models.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[engine] recovered from internal fault: %v", r)
			resp = &models.Response{
				Text: "I encountered an internal error processing your request. Please try again.",
				Metadata: models.Metadata{
					Intent:    models.IntentComplex,
					Source:    models.SourceBuiltin,
					Timestamp: time.Now(),
					Error:     true,
				},
			}
			err = nil
		}
	}()

	if err := e.validator.Validate(utterance); err != nil {
		return nil, err
	}
	utterance = strings.TrimSpace(utterance)

	intent := e.classifier.Classify(utterance)

	// Duration covers only response generation, not validation or
	// classification.
	start := time.Now()
	text, source, failed := e.respond(ctx, intent, utterance)
	duration := time.Since(start)

	formatted := Format(text)

	turn, err := models.NewTurn(utterance, formatted, intent, source, duration)
	if err != nil {
		return nil, fmt.Errorf("recording turn: %w", err)
	}
	turn.Errored = failed

	e.memory.Append(*turn)
	if e.recorder != nil {
		e.recorder.Record(*turn)
	}

	e.mu.Lock()
	e.totalQueries++
	e.lastInteraction = turn.Timestamp
	e.mu.Unlock()

	return &models.Response{
		Text: formatted,
		Metadata: models.Metadata{
			Intent:         intent,
			Source:         source,
			Timestamp:      turn.Timestamp,
			ProcessingTime: duration.Seconds(),
			Error:          failed,
		},
	}, nil
}

// respond routes the utterance to the builtin responder or the fallback
// client. Fallback failures come back as descriptive reply text, not
// errors, so a turn is always produced.
func (e *Engine) respond(ctx context.Context, intent models.Intent, utterance string) (text string, source models.Source, failed bool) {
	if intent.IsBuiltin() {
		return e.responder.Respond(intent), models.SourceBuiltin, false
	}

	// Check usability before paying call latency on a backend known to
	// be down.
	if !e.client.Available() {
		return fmt.Sprintf("I'm not connected to my reasoning backend at the moment: %s. Please check the connection and try again.",
			e.client.ConnectionError()), models.SourceModel, true
	}

	window := e.memory.Window(e.historyWindow)
	completion, err := e.client.Complete(ctx, e.systemPrompt, window, utterance)
	if err != nil {
		return fmt.Sprintf("I'm experiencing technical difficulties reaching my reasoning backend: %v. Please try again shortly.",
			err), models.SourceModel, true
	}

	return completion, models.SourceModel, false
}

// Clear resets the session memory. Counters and session identity persist.
func (e *Engine) Clear() {
	e.memory.Clear()
}

// ExportHistory returns a JSON-serializable snapshot of retained turns.
func (e *Engine) ExportHistory() models.ExportDocument {
	turns := e.memory.Turns()
	return models.ExportDocument{
		ExportedAt:        time.Now(),
		SessionID:         e.sessionID,
		TotalInteractions: len(turns),
		Turns:             turns,
	}
}

// Stats summarizes engine activity since session start.
func (e *Engine) Stats() models.SessionStats {
	e.mu.Lock()
	totalQueries := e.totalQueries
	lastInteraction := e.lastInteraction
	e.mu.Unlock()

	return models.SessionStats{
		SessionID:       e.sessionID,
		SessionStart:    e.sessionStart,
		UptimeSeconds:   time.Since(e.sessionStart).Seconds(),
		TotalQueries:    totalQueries,
		RetainedTurns:   e.memory.Len(),
		LastInteraction: lastInteraction,
		BackendOnline:   e.client.Available(),
	}
}
