// Package cli provides the cobra commands for the kicker executable.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/dkonishi/kicker/config"
)

var rootCmd = &cobra.Command{
	Use:   "kicker",
	Short: "run commands with logging and desktop notifications",
	Long: `kicker executes shell commands on behalf of a file-watching
automation tool: it captures combined output and exit status, logs
progress with timestamps, and sends desktop notifications before and
after execution.`,
	Example: `  # Run a command through the pipeline
  kicker run -- rake test

  # Silent mode: no live echo, full output dumped on failure
  kicker run --silent -- make lint

  # Show the effective configuration
  kicker config show`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultFileName, "Path to config file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
}
