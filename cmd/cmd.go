// Package cmd defines the command-line interface for ossdash.
package cmd

import (
	"github.com/braxton-quillin/oss-dashboard/internal/contract"
	"github.com/braxton-quillin/oss-dashboard/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("token", "", "GitHub API token (falls back to GITHUB_TOKEN)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or json or csv")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("listen", contract.DefaultListenAddr, "Address for the web dashboard to listen on")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}
}
