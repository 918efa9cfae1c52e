package mcp

import (
	"context"
	"encoding/json"

	"github.com/braxton-quillin/oss-dashboard/core"
	"github.com/braxton-quillin/oss-dashboard/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	client contract.RepoClient
}

func (h *toolHandler) handleGetRepoHealth(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repo := request.GetString("repo", "")
	if repo == "" {
		return mcp.NewToolResultError("repo is required (owner/name)"), nil
	}

	report := core.BuildHealthReport(ctx, h.client, repo)
	if report.Failed() {
		return mcp.NewToolResultError(report.Error), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
