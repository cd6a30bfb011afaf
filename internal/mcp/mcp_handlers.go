package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/tracktides/core"
	"github.com/huangsam/tracktides/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleGetChart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	err := contract.RevalidateChart(cfg,
		request.GetString("range", ""),
		request.GetString("series", ""),
		request.GetString("anchor", ""),
		request.GetString("select", ""),
	)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid chart parameters: %v", err)), nil
	}

	board, err := core.GetChartResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("chart failed: %v", err)), nil
	}
	return jsonResult(board)
}

func (h *toolHandler) handleGetSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if g := request.GetFloat("goal_weight", 0); g != 0 {
		if g < 0 {
			return mcp.NewToolResultError("goal_weight must be greater than 0"), nil
		}
		cfg.GoalWeight = g
	}
	if hi := request.GetFloat("height_inches", 0); hi != 0 {
		if hi < 0 {
			return mcp.NewToolResultError("height_inches must be greater than 0"), nil
		}
		cfg.HeightInches = hi
	}

	summary, err := core.GetSummaryResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("summary failed: %v", err)), nil
	}
	return jsonResult(summary)
}

func (h *toolHandler) handleListEntries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.Limit = l
	}

	entries, err := core.GetEntriesResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing entries failed: %v", err)), nil
	}
	return jsonResult(entries)
}

func (h *toolHandler) handleGetShotHistory(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	history, err := core.GetShotHistoryResults(core.WithSuppressHeader(ctx), h.baseCfg.Clone(), h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("shot history failed: %v", err)), nil
	}
	return jsonResult(history)
}

func (h *toolHandler) handleListMedications(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	meds, err := core.GetMedicationResults(core.MedicationFilter{
		Category:     request.GetString("category", ""),
		ApprovedOnly: request.GetBool("approved", false),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(meds)
}

func jsonResult(data any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
