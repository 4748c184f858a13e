package executor

import (
	"context"
	"fmt"
	"io"
	"strings"

	internalexec "github.com/dkonishi/kicker/internal/exec"
	"github.com/dkonishi/kicker/job"
)

// Execute runs a shell command through the pipeline. commandOrOptions is
// a command string or a Job options map.
//
// The command is split into argv tokens with shell-word rules and
// spawned with stderr merged into stdout. Unless silent mode is on, the
// combined output is echoed to the console as it arrives, between a
// leading blank separator and two trailing blank lines, with the console
// in unbuffered streaming mode for the duration.
//
// A non-zero exit status is a normal outcome reported on the Job. A
// command that cannot be spawned yields a failed Job with exit code 127
// and the spawn error as output; the error is also returned.
func (r *Runner) Execute(ctx context.Context, commandOrOptions any) (*job.Job, error) {
	return r.PerformWork(ctx, commandOrOptions, r.runShell)
}

// runShell is the WorkFunc supplied by Execute.
func (r *Runner) runShell(ctx context.Context, j *job.Job) error {
	silent := r.cfg.Silent

	var echo io.Writer
	if !silent {
		r.console.Blank()
		restore := r.console.StreamMode()
		// The console must come back out of streaming mode on every
		// exit path, including errors raised mid-stream.
		defer func() {
			restore()
			r.console.Blank()
			r.console.Blank()
		}()
		echo = r.console
	}

	res, err := r.proc.Run(ctx, &internalexec.RunConfig{
		Argv: splitCommand(j.Command),
		Echo: echo,
	})
	if res != nil {
		j.Output = strings.TrimSpace(string(res.Output))
		j.ExitCode = res.ExitCode
	}
	if err != nil {
		return fmt.Errorf("spawning %q: %w", j.Command, err)
	}

	return nil
}
