package cli

import (
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkonishi/kicker/config"
	"github.com/dkonishi/kicker/console"
	"github.com/dkonishi/kicker/executor"
	"github.com/dkonishi/kicker/hooks"
	"github.com/dkonishi/kicker/notify"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] -- <command...>",
	Short: "Execute one command through the pipeline",
	Long: `Executes a command, capturing combined stdout+stderr and the exit
status. The command may be given as a single quoted string or as
separate arguments after --. The process exits with the command's exit
code.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().Bool("silent", false, "Suppress live echo and before-notifications")
	runCmd.Flags().Bool("quiet", false, "Suppress timestamp prefixes in log lines")
	runCmd.Flags().Bool("clear", false, "Clear the console before the command")
	runCmd.Flags().Bool("notify", false, "Send desktop notifications")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyRunFlags(cmd, cfg)

	command := commandFromArgs(args)

	notifier := buildNotifier(cfg)
	cons := console.New(cfg, os.Stdout)

	runner, err := executor.NewBuilder().
		WithConfig(cfg).
		WithConsole(cons).
		WithNotifier(notifier).
		WithHooks(hooks.NewTiming(cons.Log)).
		Build()
	if err != nil {
		return err
	}

	// In silent mode nothing streams; show activity on a terminal.
	if cfg.Silent && term.IsTerminal(int(os.Stderr.Fd())) {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Writer = os.Stderr
		s.Suffix = " " + command
		s.Start()
		defer s.Stop()
	}

	j, _ := runner.Execute(cmd.Context(), command)
	if j != nil && !j.Success() {
		return &ExitError{Code: j.ExitCode}
	}
	return nil
}

// loadConfig resolves configuration: file (if present), then KICKER_*
// environment overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.LoadOrDefault(path)
}

// applyRunFlags lays explicit command-line flags over the resolved
// configuration. Unset flags leave file/env values alone.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("silent") {
		cfg.Silent, _ = cmd.Flags().GetBool("silent")
	}
	if cmd.Flags().Changed("quiet") {
		cfg.Quiet, _ = cmd.Flags().GetBool("quiet")
	}
	if cmd.Flags().Changed("clear") {
		cfg.ClearConsole, _ = cmd.Flags().GetBool("clear")
	}
	if cmd.Flags().Changed("notify") {
		cfg.NotifyEnabled, _ = cmd.Flags().GetBool("notify")
	}
}

// buildNotifier wires the notification collaborator: a throttled desktop
// sender when enabled, otherwise a no-op.
func buildNotifier(cfg *config.Config) notify.Notifier {
	if !cfg.NotifyEnabled {
		return notify.Noop{}
	}
	return notify.NewThrottled(notify.NewDesktop(), cfg.NotifyMinInterval)
}

// commandFromArgs reassembles the command line. A single argument is
// used verbatim (the caller already quoted it); multiple arguments are
// re-quoted so the shell-word splitter reproduces them exactly.
func commandFromArgs(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = quoteArg(a)
	}
	return strings.Join(quoted, " ")
}

// quoteArg single-quotes an argument when it contains characters the
// word splitter would otherwise interpret.
func quoteArg(a string) string {
	if a != "" && !strings.ContainsAny(a, " \t\n'\"\\$") {
		return a
	}
	return "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
}
