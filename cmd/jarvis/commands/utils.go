// ABOUTME: Shared bootstrap and display helpers for CLI commands
// ABOUTME: Builds a configured engine plus Groq client from env and .env
package commands

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/harper/jarvis-standalone/internal/auditlog"
	"github.com/harper/jarvis-standalone/internal/config"
	"github.com/harper/jarvis-standalone/internal/core"
	"github.com/harper/jarvis-standalone/internal/llm"
)

// newEngine builds a configured engine with its Groq client and
// best-effort interaction log attached.
func newEngine() (*core.Engine, *llm.GroqClient, error) {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}

	client := llm.NewGroqClientWithConfig(&llm.ClientConfig{
		APIKey:      cfg.GroqKey,
		BaseURL:     cfg.BaseURL,
		ChatModel:   cfg.ChatModel,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		Timeout:     cfg.Timeout,
	})

	engine, err := core.NewEngine(cfg, client, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing engine: %w", err)
	}

	recorder, err := auditlog.New(cfg.LogDir, engine.SessionID())
	if err != nil {
		if !quiet {
			log.Printf("Warning: interaction log disabled: %v", err)
		}
	} else {
		engine.SetRecorder(recorder)
	}

	return engine, client, nil
}

// formatTime formats a time for display
func formatTime(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	if diff < time.Minute {
		return "just now"
	} else if diff < time.Hour {
		mins := int(diff.Minutes())
		return fmt.Sprintf("%dm ago", mins)
	} else if diff < 24*time.Hour {
		hours := int(diff.Hours())
		return fmt.Sprintf("%dh ago", hours)
	} else if diff < 7*24*time.Hour {
		days := int(diff.Hours() / 24)
		return fmt.Sprintf("%dd ago", days)
	}
	return t.Format("2006-01-02")
}

// formatUptime renders a duration as HH:MM:SS
func formatUptime(d time.Duration) string {
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
