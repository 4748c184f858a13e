package notify

import (
	"context"

	internalexec "github.com/dkonishi/kicker/internal/exec"
)

// runFunc spawns a notification command. Injected in tests.
type runFunc func(ctx context.Context, argv []string) error

// Desktop delivers visual notifications through the platform's native
// notification tool (notify-send on Linux, osascript on macOS,
// PowerShell on Windows). When the tool is unavailable, delivery
// degrades to a no-op rather than failing the pipeline.
type Desktop struct {
	available bool
	run       runFunc
}

// NewDesktop creates a Desktop notifier for the current platform.
func NewDesktop() *Desktop {
	return &Desktop{
		available: platformToolAvailable(),
		run:       runNotifyCommand,
	}
}

// Notify implements Notifier.
func (d *Desktop) Notify(ctx context.Context, title, message string) error {
	if !d.available {
		return nil
	}

	argv := platformNotifyCommand(title, message)
	if len(argv) == 0 {
		return nil
	}

	return d.run(ctx, argv)
}

// Available reports whether the platform notification tool was found.
func (d *Desktop) Available() bool {
	return d.available
}

func runNotifyCommand(ctx context.Context, argv []string) error {
	runner := internalexec.NewRunner()
	_, err := runner.Run(ctx, &internalexec.RunConfig{Argv: argv})
	return err
}
