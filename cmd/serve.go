package cmd

import (
	"github.com/braxton-quillin/oss-dashboard/internal/contract"
	"github.com/braxton-quillin/oss-dashboard/internal/web"
	"github.com/spf13/cobra"
)

// serveCmd runs the web dashboard.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the health dashboard over HTTP",
	Long: `Launch a web dashboard that computes a health snapshot for any
repository submitted through the search form (?repo=owner/name).`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		client := contract.NewGitHubClient(rootCtx, cfg.Token)
		server, err := web.NewServer(client)
		if err != nil {
			return err
		}
		return server.ListenAndServe(cfg.ListenAddr)
	},
}
