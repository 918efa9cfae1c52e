// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/braxton-quillin/oss-dashboard/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the ossdash MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(client contract.RepoClient) *server.MCPServer {
	s := server.NewMCPServer(
		"Repository Health Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{client: client}

	s.AddTool(mcp.NewTool("get_repo_health",
		mcp.WithDescription("Compute health metrics (responsiveness, review latency, bus factor, community health) for a GitHub repository."),
		mcp.WithString("repo", mcp.Description("Repository identifier in owner/name form."), mcp.Required()),
	), h.handleGetRepoHealth)

	return s
}

// StartMCPServer starts the ossdash MCP server on stdio.
func StartMCPServer(_ context.Context, client contract.RepoClient) error {
	s := NewMCPServer(client)
	return server.ServeStdio(s)
}
