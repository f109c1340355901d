// ABOUTME: Centralized configuration for the JARVIS dialogue engine
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultSystemPrompt is the persona prompt sent with every fallback call.
const DefaultSystemPrompt = `You are JARVIS, Tony Stark's advanced AI assistant from Iron Man.

Your personality:
- Highly intelligent and sophisticated
- Professional yet witty
- Slight British accent in your responses
- Confident and capable
- Loyal and helpful
- Always address the user respectfully

Keep responses:
- Clear and informative
- Conversational but professional
- Under 300 words unless specifically requested otherwise`

// Config holds all configuration for the dialogue engine
type Config struct {
	// Input validation settings
	MaxInputRunes int
	Denylist      []string

	// Groq settings (OpenAI-compatible endpoint)
	GroqKey     string
	BaseURL     string
	ChatModel   string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration

	// Dialogue settings
	SystemPrompt   string
	MemoryCapacity int
	HistoryWindow  int

	// Audit log settings
	LogDir string // empty means XDG data dir
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		MaxInputRunes:  getEnvInt("JARVIS_MAX_INPUT", 2000),
		Denylist:       getEnvList("JARVIS_DENYLIST", []string{"<script", "javascript:", "eval(", "exec("}),
		GroqKey:        os.Getenv("GROQ_API_KEY"),
		BaseURL:        getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		ChatModel:      getEnv("JARVIS_MODEL", "llama-3.3-70b-versatile"),
		MaxTokens:      getEnvInt("JARVIS_MAX_TOKENS", 500),
		Temperature:    float32(getEnvFloat("JARVIS_TEMPERATURE", 0.7)),
		Timeout:        getEnvDuration("GROQ_TIMEOUT", 30*time.Second),
		SystemPrompt:   getEnv("JARVIS_SYSTEM_PROMPT", DefaultSystemPrompt),
		MemoryCapacity: getEnvInt("JARVIS_MEMORY_CAPACITY", 10),
		HistoryWindow:  getEnvInt("JARVIS_HISTORY_WINDOW", 3),
		LogDir:         os.Getenv("JARVIS_LOG_DIR"),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.MaxInputRunes <= 0 {
		return fmt.Errorf("JARVIS_MAX_INPUT must be positive, got %d", c.MaxInputRunes)
	}
	if c.MemoryCapacity <= 0 {
		return fmt.Errorf("JARVIS_MEMORY_CAPACITY must be positive, got %d", c.MemoryCapacity)
	}
	if c.HistoryWindow < 0 || c.HistoryWindow > c.MemoryCapacity {
		return fmt.Errorf("JARVIS_HISTORY_WINDOW must be 0-%d, got %d", c.MemoryCapacity, c.HistoryWindow)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("JARVIS_TEMPERATURE must be 0-2, got %f", c.Temperature)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("JARVIS_MAX_TOKENS must be positive, got %d", c.MaxTokens)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

func getEnvList(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
