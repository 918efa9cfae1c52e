package cmd

import (
	"github.com/braxton-quillin/oss-dashboard/core"
	"github.com/braxton-quillin/oss-dashboard/internal/contract"
	"github.com/braxton-quillin/oss-dashboard/internal/outwriter"
	"github.com/spf13/cobra"
)

// reportCmd computes a single health snapshot for one repository.
var reportCmd = &cobra.Command{
	Use:   "report <owner/name>",
	Short: "Compute a health snapshot for a repository",
	Long: `Compute health metrics for a repository hosted on GitHub.

The snapshot covers responsiveness (time to first comment on closed issues),
open-issue age, pull request review latency, contributor concentration
(bus factor) and the community health score, each classified into a
favorable/moderate/unfavorable/unknown band.

Examples:
  # Human-readable table
  ossdash report django/django

  # Machine-readable output
  ossdash report torvalds/linux --output json

  # Write CSV to a file
  ossdash report golang/go --output csv --output-file health.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		client := contract.NewGitHubClient(rootCtx, cfg.Token)
		report := core.BuildHealthReport(rootCtx, client, args[0])
		if err := outwriter.WriteReport(report, cfg); err != nil {
			contract.LogFatal("Error writing report", err)
		}
	},
}
