// ABOUTME: MCP tool definitions and registration for the JARVIS dialogue server
// ABOUTME: Defines JSON schemas for the 4 dialogue tools
package mcp

import (
	"github.com/harper/jarvis-standalone/internal/core"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, engine *core.Engine) *Handlers {
	handlers := &Handlers{engine: engine}

	// 1. process_message - Run one utterance through the dialogue engine
	server.AddTool(mcp.Tool{
		Name:        "process_message",
		Description: "Process a user message through the JARVIS dialogue engine. Answers locally for simple intents (greeting, time, date, status, thanks) and delegates complex messages to the model backend with recent conversation context.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"message": map[string]interface{}{
					"type":        "string",
					"description": "User message to process",
				},
			},
			Required: []string{"message"},
		},
	}, handlers.ProcessMessage)

	// 2. clear_history - Reset the session memory
	server.AddTool(mcp.Tool{
		Name:        "clear_history",
		Description: "Clear the retained conversation history for the current session.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ClearHistory)

	// 3. export_history - Export retained turns as JSON
	server.AddTool(mcp.Tool{
		Name:        "export_history",
		Description: "Export the retained conversation turns as a structured JSON document.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ExportHistory)

	// 4. session_stats - Summarize session activity
	server.AddTool(mcp.Tool{
		Name:        "session_stats",
		Description: "Get session statistics: uptime, total queries, retained turns, and backend connection status.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.SessionStats)

	return handlers
}
