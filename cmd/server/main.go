// ABOUTME: Main entry point for the JARVIS dialogue MCP server with stdio transport
// ABOUTME: Initializes config, Groq client, engine, and MCP server with all tools
package main

import (
	"log"

	"github.com/harper/jarvis-standalone/internal/auditlog"
	"github.com/harper/jarvis-standalone/internal/config"
	"github.com/harper/jarvis-standalone/internal/core"
	"github.com/harper/jarvis-standalone/internal/llm"
	"github.com/harper/jarvis-standalone/internal/mcp"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.GroqKey == "" {
		log.Println("Warning: GROQ_API_KEY not set - complex messages will get a degraded reply")
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
		log.Fatalf("Failed to initialize engine: %v", err)
	}

	// Interaction log is best-effort: a failure here only disables it.
	recorder, err := auditlog.New(cfg.LogDir, engine.SessionID())
	if err != nil {
		log.Printf("Warning: interaction log disabled: %v", err)
	} else {
		engine.SetRecorder(recorder)
	}

	// Create MCP server
	server := mcpserver.NewMCPServer(
		"JARVIS Dialogue Engine",
		"0.1.0",
	)

	// Register MCP tools
	mcp.RegisterTools(server, engine)

	// Start server with stdio transport
	log.Println("JARVIS MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
