// ABOUTME: MCP tool handler implementations for the JARVIS dialogue server
// ABOUTME: Validation failures surface as tool errors; fallback failures stay in the reply
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harper/jarvis-standalone/internal/core"
	"github.com/harper/jarvis-standalone/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	engine *core.Engine
}

// ProcessMessage handles the process_message tool
func (h *Handlers) ProcessMessage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("message argument is required and must be a string"), nil
	}

	resp, err := h.engine.Process(ctx, message)
	if err != nil {
		// Validation failures: ask the caller to rephrase.
		return mcp.NewToolResultError(fmt.Sprintf("invalid input (%s): %v", models.KindOf(err), err)), nil
	}

	responseJSON, err := json.Marshal(resp)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// ClearHistory handles the clear_history tool
func (h *Handlers) ClearHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.engine.Clear()
	return mcp.NewToolResultText(`{"cleared":true}`), nil
}

// ExportHistory handles the export_history tool
func (h *Handlers) ExportHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc := h.engine.ExportHistory()

	responseJSON, err := json.Marshal(doc)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal history: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// SessionStats handles the session_stats tool
func (h *Handlers) SessionStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats := h.engine.Stats()

	responseJSON, err := json.Marshal(stats)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal stats: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}
