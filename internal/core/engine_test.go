// ABOUTME: Tests for the dialogue engine pipeline and its degradation behavior
// ABOUTME: Uses a fake completion client to cover builtin, model, and failure paths
package core

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/harper/jarvis-standalone/internal/config"
	"github.com/harper/jarvis-standalone/internal/models"
)

// fakeClient is a scriptable CompletionClient.
type fakeClient struct {
	available bool
	reply     string
	err       error

	calls         int
	lastSystemStr string
	lastHistory   []models.Turn
	lastUtterance string
}

func (f *fakeClient) Available() bool {
	return f.available
}

func (f *fakeClient) ConnectionError() string {
	if f.available {
		return ""
	}
	return "no API key configured"
}

func (f *fakeClient) Complete(ctx context.Context, systemPrompt string, history []models.Turn, utterance string) (string, error) {
	f.calls++
	f.lastSystemStr = systemPrompt
	f.lastHistory = history
	f.lastUtterance = utterance
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// fakeRecorder captures turns handed to the side channel.
type fakeRecorder struct {
	turns []models.Turn
}

func (f *fakeRecorder) Record(turn models.Turn) {
	f.turns = append(f.turns, turn)
}

func testConfig() *config.Config {
	return &config.Config{
		MaxInputRunes:  2000,
		Denylist:       []string{"<script", "javascript:", "eval(", "exec("},
		SystemPrompt:   "You are JARVIS.",
		MemoryCapacity: 10,
		HistoryWindow:  3,
		MaxTokens:      500,
		Temperature:    0.7,
	}
}

func newTestEngine(t *testing.T, client *fakeClient) (*Engine, *fakeRecorder) {
	t.Helper()
	recorder := &fakeRecorder{}
	engine, err := NewEngine(testConfig(), client, recorder)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine, recorder
}

func TestEngine_BuiltinTime(t *testing.T) {
	client := &fakeClient{available: true}
	engine, recorder := newTestEngine(t, client)

	resp, err := engine.Process(context.Background(), "What time is it?")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if resp.Metadata.Intent != models.IntentTime {
		t.Errorf("Intent = %q, want time", resp.Metadata.Intent)
	}
	if resp.Metadata.Source != models.SourceBuiltin {
		t.Errorf("Source = %q, want builtin", resp.Metadata.Source)
	}
	if resp.Metadata.Error {
		t.Error("Error = true, want false")
	}

	pattern := regexp.MustCompile(`^The current time is \d{2}:\d{2} [AP]M, sir\.$`)
	if !pattern.MatchString(resp.Text) {
		t.Errorf("Text = %q, want match of %q", resp.Text, pattern)
	}

	if client.calls != 0 {
		t.Errorf("fallback called %d times for a builtin intent", client.calls)
	}
	if len(recorder.turns) != 1 {
		t.Fatalf("recorded %d turns, want 1", len(recorder.turns))
	}
	if engine.Memory().Len() != 1 {
		t.Errorf("memory Len = %d, want 1", engine.Memory().Len())
	}
}

func TestEngine_BuiltinGreeting(t *testing.T) {
	engine, _ := newTestEngine(t, &fakeClient{available: true})

	resp, err := engine.Process(context.Background(), "Hello JARVIS")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if resp.Metadata.Intent != models.IntentGreeting {
		t.Errorf("Intent = %q, want greeting", resp.Metadata.Intent)
	}
	if resp.Metadata.Source != models.SourceBuiltin {
		t.Errorf("Source = %q, want builtin", resp.Metadata.Source)
	}

	found := false
	for _, candidate := range Responses(models.IntentGreeting) {
		if resp.Text == candidate {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Text = %q, not in the fixed greeting pool", resp.Text)
	}
}

func TestEngine_ComplexDelegatesToFallback(t *testing.T) {
	client := &fakeClient{available: true, reply: "quantum computers use qubits"}
	engine, recorder := newTestEngine(t, client)

	resp, err := engine.Process(context.Background(), "Explain quantum computing")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if resp.Metadata.Intent != models.IntentComplex {
		t.Errorf("Intent = %q, want complex", resp.Metadata.Intent)
	}
	if resp.Metadata.Source != models.SourceModel {
		t.Errorf("Source = %q, want model", resp.Metadata.Source)
	}
	if resp.Metadata.Error {
		t.Error("Error = true, want false")
	}
	// Completion text is formatted before display and recording.
	if resp.Text != "Quantum computers use qubits." {
		t.Errorf("Text = %q, want formatted completion", resp.Text)
	}

	if client.calls != 1 {
		t.Errorf("fallback calls = %d, want 1", client.calls)
	}
	if client.lastSystemStr != "You are JARVIS." {
		t.Errorf("system prompt = %q", client.lastSystemStr)
	}
	if client.lastUtterance != "Explain quantum computing" {
		t.Errorf("utterance = %q", client.lastUtterance)
	}

	if len(recorder.turns) != 1 {
		t.Fatalf("recorded %d turns, want 1", len(recorder.turns))
	}
	if recorder.turns[0].AIResponse != "Quantum computers use qubits." {
		t.Errorf("recorded response = %q, want the formatted text", recorder.turns[0].AIResponse)
	}
}

func TestEngine_FallbackFailureDegrades(t *testing.T) {
	client := &fakeClient{
		available: true,
		err:       models.NewError(models.ErrBackendError, "rate limited"),
	}
	engine, recorder := newTestEngine(t, client)

	resp, err := engine.Process(context.Background(), "Explain quantum computing")
	if err != nil {
		t.Fatalf("Process() error = %v, failures must degrade, not propagate", err)
	}

	if resp.Metadata.Source != models.SourceModel {
		t.Errorf("Source = %q, want model even on failure", resp.Metadata.Source)
	}
	if !resp.Metadata.Error {
		t.Error("Error = false, want true")
	}
	if !strings.Contains(resp.Text, "technical difficulties") {
		t.Errorf("Text = %q, want a descriptive failure message", resp.Text)
	}

	// The failed exchange is still recorded as a turn.
	if len(recorder.turns) != 1 {
		t.Fatalf("recorded %d turns, want 1", len(recorder.turns))
	}
	if !recorder.turns[0].Errored {
		t.Error("recorded turn not marked errored")
	}
	if engine.Memory().Len() != 1 {
		t.Errorf("memory Len = %d, want 1", engine.Memory().Len())
	}
}

func TestEngine_BackendUnavailableSkipsCall(t *testing.T) {
	client := &fakeClient{available: false}
	engine, _ := newTestEngine(t, client)

	resp, err := engine.Process(context.Background(), "Explain quantum computing")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if client.calls != 0 {
		t.Errorf("fallback called %d times while unavailable", client.calls)
	}
	if !resp.Metadata.Error {
		t.Error("Error = false, want true")
	}
	if !strings.Contains(resp.Text, "not connected") {
		t.Errorf("Text = %q, want an unavailability message", resp.Text)
	}
	if engine.Memory().Len() != 1 {
		t.Errorf("memory Len = %d, want 1 (degraded turn still recorded)", engine.Memory().Len())
	}
}

func TestEngine_ValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind models.ErrorKind
	}{
		{"empty", "", models.ErrEmptyInput},
		{"whitespace", "   ", models.ErrEmptyInput},
		{"too long", strings.Repeat("a", 2001), models.ErrTooLong},
		{"script injection", "<script>alert(1)</script>", models.ErrUnsafePattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{available: true}
			engine, recorder := newTestEngine(t, client)

			resp, err := engine.Process(context.Background(), tt.input)
			if err == nil {
				t.Fatalf("Process(%q) = %q, want validation error", tt.input, resp.Text)
			}
			if got := models.KindOf(err); got != tt.wantKind {
				t.Errorf("kind = %q, want %q", got, tt.wantKind)
			}

			// No turn is recorded for rejected input.
			if len(recorder.turns) != 0 {
				t.Errorf("recorded %d turns, want 0", len(recorder.turns))
			}
			if engine.Memory().Len() != 0 {
				t.Errorf("memory Len = %d, want 0", engine.Memory().Len())
			}
			if engine.Stats().TotalQueries != 0 {
				t.Errorf("TotalQueries = %d, want 0", engine.Stats().TotalQueries)
			}
		})
	}
}

func TestEngine_HistoryWindowPassedChronologically(t *testing.T) {
	client := &fakeClient{available: true, reply: "noted"}
	engine, _ := newTestEngine(t, client)

	for i := 0; i < 5; i++ {
		if _, err := engine.Process(context.Background(), fmt.Sprintf("question number %d", i)); err != nil {
			t.Fatalf("Process() error = %v", err)
		}
	}

	// The sixth call sees a window of the configured size (3).
	if _, err := engine.Process(context.Background(), "question number 5"); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if len(client.lastHistory) != 3 {
		t.Fatalf("history window len = %d, want 3", len(client.lastHistory))
	}
	for i, turn := range client.lastHistory {
		want := fmt.Sprintf("question number %d", i+2)
		if turn.UserMessage != want {
			t.Errorf("history[%d].UserMessage = %q, want %q", i, turn.UserMessage, want)
		}
	}
}

func TestEngine_MemoryCapacityBound(t *testing.T) {
	client := &fakeClient{available: true, reply: "ok"}
	engine, _ := newTestEngine(t, client)

	for i := 0; i < 25; i++ {
		if _, err := engine.Process(context.Background(), fmt.Sprintf("message %d", i)); err != nil {
			t.Fatalf("Process() error = %v", err)
		}
	}

	doc := engine.ExportHistory()
	if doc.TotalInteractions != 10 {
		t.Errorf("TotalInteractions = %d, want capacity 10", doc.TotalInteractions)
	}
	if doc.Turns[0].UserMessage != "message 15" {
		t.Errorf("oldest retained = %q, want %q", doc.Turns[0].UserMessage, "message 15")
	}
	if doc.Turns[9].UserMessage != "message 24" {
		t.Errorf("newest retained = %q, want %q", doc.Turns[9].UserMessage, "message 24")
	}
}

func TestEngine_ExportHistoryCountsMinOfProcessedAndCapacity(t *testing.T) {
	client := &fakeClient{available: true, reply: "ok"}
	engine, _ := newTestEngine(t, client)

	for i := 0; i < 4; i++ {
		if _, err := engine.Process(context.Background(), fmt.Sprintf("message %d", i)); err != nil {
			t.Fatalf("Process() error = %v", err)
		}
	}

	doc := engine.ExportHistory()
	if doc.TotalInteractions != 4 {
		t.Errorf("TotalInteractions = %d, want 4", doc.TotalInteractions)
	}
	if doc.SessionID != engine.SessionID() {
		t.Errorf("SessionID = %q, want %q", doc.SessionID, engine.SessionID())
	}
}

func TestEngine_ClearResetsMemoryNotCounters(t *testing.T) {
	client := &fakeClient{available: true, reply: "ok"}
	engine, _ := newTestEngine(t, client)

	for i := 0; i < 3; i++ {
		if _, err := engine.Process(context.Background(), fmt.Sprintf("message %d", i)); err != nil {
			t.Fatalf("Process() error = %v", err)
		}
	}

	engine.Clear()

	stats := engine.Stats()
	if stats.RetainedTurns != 0 {
		t.Errorf("RetainedTurns = %d, want 0 after Clear", stats.RetainedTurns)
	}
	if stats.TotalQueries != 3 {
		t.Errorf("TotalQueries = %d, want 3 (counters survive Clear)", stats.TotalQueries)
	}
}

func TestEngine_StatsReflectsActivity(t *testing.T) {
	client := &fakeClient{available: true, reply: "ok"}
	engine, _ := newTestEngine(t, client)

	stats := engine.Stats()
	if stats.TotalQueries != 0 || stats.RetainedTurns != 0 {
		t.Errorf("fresh stats = %+v, want zero activity", stats)
	}
	if !stats.LastInteraction.IsZero() {
		t.Error("LastInteraction should be zero before any query")
	}
	if !stats.BackendOnline {
		t.Error("BackendOnline = false, want true")
	}

	if _, err := engine.Process(context.Background(), "hello there"); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	stats = engine.Stats()
	if stats.TotalQueries != 1 {
		t.Errorf("TotalQueries = %d, want 1", stats.TotalQueries)
	}
	if stats.RetainedTurns != 1 {
		t.Errorf("RetainedTurns = %d, want 1", stats.RetainedTurns)
	}
	if stats.LastInteraction.IsZero() {
		t.Error("LastInteraction should be set after a query")
	}
	if stats.SessionID == "" {
		t.Error("SessionID should not be empty")
	}
}

func TestEngine_NilRecorderIsFine(t *testing.T) {
	engine, err := NewEngine(testConfig(), &fakeClient{available: true}, nil)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	if _, err := engine.Process(context.Background(), "hello"); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
}

func TestEngine_TrimsUtteranceBeforeRecording(t *testing.T) {
	client := &fakeClient{available: true, reply: "ok"}
	engine, recorder := newTestEngine(t, client)

	if _, err := engine.Process(context.Background(), "  Explain gravity  "); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if client.lastUtterance != "Explain gravity" {
		t.Errorf("utterance = %q, want trimmed", client.lastUtterance)
	}
	if recorder.turns[0].UserMessage != "Explain gravity" {
		t.Errorf("recorded message = %q, want trimmed", recorder.turns[0].UserMessage)
	}
}

func TestEngine_EmptyCompletionGetsApology(t *testing.T) {
	client := &fakeClient{available: true, reply: "   "}
	engine, _ := newTestEngine(t, client)

	resp, err := engine.Process(context.Background(), "Explain the void")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if resp.Text != Apology {
		t.Errorf("Text = %q, want the apology string", resp.Text)
	}
	// A blank completion is not a backend failure.
	if resp.Metadata.Error {
		t.Error("Error = true, want false")
	}
}
