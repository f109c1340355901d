// ABOUTME: Serve command starts the Model Context Protocol server
// ABOUTME: Enables LLM agents to drive the dialogue engine via stdio
package commands

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/harper/jarvis-standalone/internal/auditlog"
	"github.com/harper/jarvis-standalone/internal/config"
	"github.com/harper/jarvis-standalone/internal/core"
	"github.com/harper/jarvis-standalone/internal/llm"
	"github.com/harper/jarvis-standalone/internal/mcp"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs the dialogue engine as an MCP (Model Context Protocol) server over
stdio, exposing process_message, clear_history, export_history, and
session_stats tools.`,
		RunE: runServe,
		Example: `  # Start MCP server (typically launched by an agent host)
  jarvis serve

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "jarvis": {
  #       "command": "jarvis",
  #       "args": ["serve"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runServe starts the MCP server
func runServe(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && !quiet {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.GroqKey == "" && !quiet {
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
		return err
	}

	recorder, err := auditlog.New(cfg.LogDir, engine.SessionID())
	if err != nil {
		if !quiet {
			log.Printf("Warning: interaction log disabled: %v", err)
		}
	} else {
		engine.SetRecorder(recorder)
	}

	server := mcpserver.NewMCPServer(
		"JARVIS Dialogue Engine",
		"0.1.0",
	)
	mcp.RegisterTools(server, engine)

	if !quiet {
		log.Println("JARVIS MCP server starting on stdio...")
	}
	return mcpserver.ServeStdio(server)
}
