package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Long: `Resolves configuration the same way "run" does (defaults, then the
config file if present, then KICKER_* environment variables) and prints
the result.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		// Durations render as "2s" rather than raw nanoseconds.
		view := struct {
			Silent            bool   `yaml:"silent"`
			Quiet             bool   `yaml:"quiet"`
			ClearConsole      bool   `yaml:"clear_console"`
			NotifyEnabled     bool   `yaml:"notify_enabled"`
			NotifyMinInterval string `yaml:"notify_min_interval"`
		}{
			Silent:            cfg.Silent,
			Quiet:             cfg.Quiet,
			ClearConsole:      cfg.ClearConsole,
			NotifyEnabled:     cfg.NotifyEnabled,
			NotifyMinInterval: cfg.NotifyMinInterval.String(),
		}

		out, err := yaml.Marshal(view)
		if err != nil {
			return fmt.Errorf("encoding configuration: %w", err)
		}
		cmd.OutOrStdout().Write(out)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
