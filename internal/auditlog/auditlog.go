// ABOUTME: Append-only JSONL interaction log, one record per processed turn
// ABOUTME: Best-effort side channel; write failures are logged and never propagated
package auditlog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/harper/jarvis-standalone/internal/models"
	"github.com/harper/jarvis-standalone/internal/util"
)

// Truncation limits keep log lines short; full text lives only in memory.
const (
	maxLoggedInput    = 100
	maxLoggedResponse = 200
)

// Entry is one JSONL record in the interaction log.
type Entry struct {
	Timestamp      time.Time     `json:"timestamp"`
	UserInput      string        `json:"user_input"`
	Response       string        `json:"response"`
	Intent         models.Intent `json:"intent"`
	Source         models.Source `json:"source"`
	ProcessingTime float64       `json:"processing_time"`
	SessionID      string        `json:"session_id"`
}

// Logger appends interaction records to a dated JSONL file.
type Logger struct {
	dir       string
	sessionID string
}

// New creates a Logger writing under dir. An empty dir selects the
// XDG data directory (~/.local/share/jarvis), matching the storage layout
// convention. Respects XDG_DATA_HOME for test overrides.
func New(dir, sessionID string) (*Logger, error) {
	if dir == "" {
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			dataHome = xdg.DataHome
		}
		dir = filepath.Join(dataHome, "jarvis")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	return &Logger{dir: dir, sessionID: sessionID}, nil
}

// Record appends one entry for a processed turn. Best-effort: any failure
// is logged and swallowed so the response path is never interrupted.
func (l *Logger) Record(turn models.Turn) {
	if l == nil {
		return
	}

	entry := Entry{
		Timestamp:      turn.Timestamp,
		UserInput:      util.Truncate(turn.UserMessage, maxLoggedInput),
		Response:       util.Truncate(turn.AIResponse, maxLoggedResponse),
		Intent:         turn.Intent,
		Source:         turn.Source,
		ProcessingTime: turn.Duration.Seconds(),
		SessionID:      l.sessionID,
	}

	if err := l.append(entry); err != nil {
		log.Printf("[auditlog] write failed: %v", err)
	}
}

// Path returns the log file path for the given day.
func (l *Logger) Path(t time.Time) string {
	return filepath.Join(l.dir, fmt.Sprintf("interactions_%s.jsonl", t.Format("20060102")))
}

func (l *Logger) append(entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling entry: %w", err)
	}

	f, err := os.OpenFile(l.Path(entry.Timestamp), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing entry: %w", err)
	}
	return nil
}
