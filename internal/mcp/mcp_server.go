// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/tracktides/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the tracktides MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Tracktides Health Log Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_chart ---
	s.AddTool(mcp.NewTool("get_chart",
		mcp.WithDescription("Build chart views (window, y-axis range, averages, readout) for weight, weight change and injection pain."),
		mcp.WithString("series", mcp.Description("Comma separated series (weight, change, pain) or 'all'. Defaults to the configured series.")),
		mcp.WithString("range", mcp.Description("Visible time range. Defaults to the configured range."), mcp.Enum("D", "W", "M", "6M", "Y")),
		mcp.WithString("anchor", mcp.Description("End of the visible window (RFC3339, YYYY-MM-DD or 'N units ago'). Defaults to now.")),
		mcp.WithString("select", mcp.Description("Pin the readout to the point nearest this date.")),
	), h.handleGetChart)

	// --- 2. Tool: get_summary ---
	s.AddTool(mcp.NewTool("get_summary",
		mcp.WithDescription("Summarize the entry log: BMI, goal progress and when the next shot is due."),
		mcp.WithNumber("goal_weight", mcp.Description("Goal weight in pounds.")),
		mcp.WithNumber("height_inches", mcp.Description("Height in inches used for BMI.")),
	), h.handleGetSummary)

	// --- 3. Tool: list_entries ---
	s.AddTool(mcp.NewTool("list_entries",
		mcp.WithDescription("List logged day entries, oldest first."),
		mcp.WithNumber("limit", mcp.Description("Only return the most recent N entries.")),
	), h.handleListEntries)

	// --- 4. Tool: get_shot_history ---
	s.AddTool(mcp.NewTool("get_shot_history",
		mcp.WithDescription("List injections grouped by month, newest first, with interval statistics."),
	), h.handleGetShotHistory)

	// --- 5. Tool: list_medications ---
	s.AddTool(mcp.NewTool("list_medications",
		mcp.WithDescription("List the built-in medication catalogue."),
		mcp.WithString("category", mcp.Description("Only return medications in this category (e.g. Metabolic, Hormone).")),
		mcp.WithBoolean("approved", mcp.Description("Only return FDA-approved medications.")),
	), h.handleListMedications)

	return s
}

// StartMCPServer starts the tracktides MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
