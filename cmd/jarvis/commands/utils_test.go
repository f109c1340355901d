// ABOUTME: Tests for shared display helpers used by CLI commands
// ABOUTME: Verifies relative time and uptime formatting
package commands

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", now.Add(-10 * time.Second), "just now"},
		{"minutes ago", now.Add(-5 * time.Minute), "5m ago"},
		{"hours ago", now.Add(-3 * time.Hour), "3h ago"},
		{"days ago", now.Add(-48 * time.Hour), "2d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatTime(tt.t); got != tt.want {
				t.Errorf("formatTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatTime_OldDatesUseAbsolute(t *testing.T) {
	old := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	if got := formatTime(old); got != "2025-01-15" {
		t.Errorf("formatTime() = %q, want 2025-01-15", got)
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{45 * time.Second, "00:00:45"},
		{5*time.Minute + 3*time.Second, "00:05:03"},
		{2*time.Hour + 30*time.Minute + 1*time.Second, "02:30:01"},
		{26 * time.Hour, "26:00:00"},
	}

	for _, tt := range tests {
		if got := formatUptime(tt.d); got != tt.want {
			t.Errorf("formatUptime(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
