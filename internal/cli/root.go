// Package cli implements the plm command-line interface.
package cli

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "plm",
	Short: "Personal Life Manager API",
	Long: `plm serves the Personal Life Manager REST API.

Quick start:
  plm migrate up        Create the task and personal_note tables
  plm serve             Start the HTTP server
  plm token --sub me    Print a bearer token for local testing`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml when present)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newTokenCmd())
}
