package cmd

import (
	"github.com/braxton-quillin/oss-dashboard/internal/contract"
	"github.com/braxton-quillin/oss-dashboard/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the ossdash MCP server",
	Long:  `Launch an MCP server that allows AI agents to compute repository health snapshots via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Nothing is printed before the server starts so that stdio stays
		// clean for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		client := contract.NewGitHubClient(rootCtx, cfg.Token)
		return mcp.StartMCPServer(rootCtx, client)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
