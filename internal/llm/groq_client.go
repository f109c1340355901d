// ABOUTME: Groq completion client for complex utterances the builtin path can't answer
// ABOUTME: Uses the OpenAI-compatible Groq endpoint via sashabaranov/go-openai
package llm

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/harper/jarvis-standalone/internal/models"
	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultChatModel is the default Groq model for chat completions
	DefaultChatModel = "llama-3.3-70b-versatile"
	// DefaultBaseURL is Groq's OpenAI-compatible API endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"
)

// ClientConfig holds configuration for the Groq client
type ClientConfig struct {
	APIKey      string
	BaseURL     string
	ChatModel   string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	return &ClientConfig{
		APIKey:      apiKey,
		BaseURL:     DefaultBaseURL,
		ChatModel:   DefaultChatModel,
		MaxTokens:   500,
		Temperature: 0.7,
		Timeout:     30 * time.Second,
	}
}

// Status reports the client's connection state for stats surfaces.
type Status struct {
	Connected    bool      `json:"connected"`
	Model        string    `json:"model"`
	RequestsMade int       `json:"requests_made"`
	LastRequest  time.Time `json:"last_request,omitzero"`
	Error        string    `json:"error,omitempty"`
}

// GroqClient wraps the Groq chat completion API. A client constructed
// without a usable credential stays in the unavailable state rather than
// failing construction, so the engine can degrade per call.
type GroqClient struct {
	client      *openai.Client
	chatModel   string
	maxTokens   int
	temperature float32
	timeout     time.Duration

	mu           sync.Mutex
	connErr      string
	requestCount int
	lastRequest  time.Time
}

// NewGroqClient creates a client with default configuration.
func NewGroqClient(apiKey string) *GroqClient {
	return NewGroqClientWithConfig(DefaultConfig(apiKey))
}

// NewGroqClientWithConfig creates a client with custom configuration.
func NewGroqClientWithConfig(config *ClientConfig) *GroqClient {
	c := &GroqClient{
		chatModel:   config.ChatModel,
		maxTokens:   config.MaxTokens,
		temperature: config.Temperature,
		timeout:     config.Timeout,
	}

	if config.APIKey == "" {
		c.connErr = "no API key configured"
		return c
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	c.client = openai.NewClientWithConfig(clientConfig)
	return c
}

// Available reports whether the client has a usable connection. The engine
// checks this before paying call latency on a backend known to be down.
func (c *GroqClient) Available() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.client != nil && c.connErr == ""
}

// ConnectionError returns the diagnostic for an unavailable client.
func (c *GroqClient) ConnectionError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connErr
}

// Ping issues a minimal completion to verify the connection. Entry points
// may call it at startup; the engine itself never does.
func (c *GroqClient) Ping(ctx context.Context) error {
	if c.client == nil {
		return models.NewError(models.ErrBackendUnavailable, c.connErr)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.chatModel,
		Messages:  []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: "test"}},
		MaxTokens: 5,
	})
	if err != nil {
		c.mu.Lock()
		c.connErr = fmt.Sprintf("connection test failed: %v", err)
		c.mu.Unlock()
		return models.NewError(models.ErrBackendUnavailable, c.connErr)
	}

	c.mu.Lock()
	c.connErr = ""
	c.mu.Unlock()
	return nil
}

// Complete asks the model for a reply to the utterance, prepending the
// system prompt and the history window as chronological (user, assistant)
// pairs. Returns the completion verbatim. No automatic retry: a single
// failure surfaces directly so the engine can degrade the response.
func (c *GroqClient) Complete(ctx context.Context, systemPrompt string, history []models.Turn, utterance string) (string, error) {
	if !c.Available() {
		return "", models.NewError(models.ErrBackendUnavailable,
			fmt.Sprintf("no usable backend connection: %s", c.ConnectionError()))
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2*len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, turn := range history {
		messages = append(messages,
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: turn.UserMessage},
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: turn.AIResponse},
		)
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: utterance,
	})

	c.mu.Lock()
	c.requestCount++
	c.lastRequest = time.Now()
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.chatModel,
		Messages:    messages,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", models.NewError(models.ErrBackendError,
			fmt.Sprintf("completion request failed: %v", err))
	}
	if len(resp.Choices) == 0 {
		return "", models.NewError(models.ErrBackendError, "no completion choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}

// Status returns the client's current connection state and call counters.
func (c *GroqClient) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Status{
		Connected:    c.client != nil && c.connErr == "",
		Model:        c.chatModel,
		RequestsMade: c.requestCount,
		LastRequest:  c.lastRequest,
		Error:        c.connErr,
	}
}
