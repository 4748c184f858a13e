// Package exec provides the internal subprocess wrapper.
// This is the ONLY package in the module that imports os/exec.
// All process spawning MUST go through this package.
package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"
)

// Runner spawns subprocesses with stderr merged into stdout.
type Runner struct{}

// NewRunner creates a new subprocess runner.
func NewRunner() *Runner {
	return &Runner{}
}

// RunConfig configures one subprocess invocation.
type RunConfig struct {
	// Argv is the command and its arguments. Argv[0] is the binary.
	Argv []string

	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Env is the environment. Nil inherits the process environment.
	Env []string

	// Echo, when non-nil, receives every chunk of combined output as it
	// arrives, in addition to the captured buffer.
	Echo io.Writer
}

// RunResult contains the outcome of one subprocess invocation.
type RunResult struct {
	// ExitCode is the subprocess exit status.
	ExitCode int

	// Output is the captured combined stdout+stderr, untrimmed.
	Output []byte

	// Duration is the wall clock time of execution.
	Duration time.Duration
}

// Run spawns the configured command and blocks until it exits. The
// subprocess's standard error is merged into its standard output; the
// combined stream is accumulated into the result and simultaneously
// echoed to cfg.Echo when set.
//
// A non-zero exit status is a normal outcome: it is reported in the
// result with a nil error. A non-nil error means the command could not
// be spawned or was interrupted before producing an exit status.
func (r *Runner) Run(ctx context.Context, cfg *RunConfig) (*RunResult, error) {
	if len(cfg.Argv) == 0 {
		return nil, fmt.Errorf("empty argv")
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	cmd := exec.CommandContext(ctx, cfg.Argv[0], cfg.Argv[1:]...)
	cmd.Dir = cfg.Dir

	if cfg.Env != nil {
		cmd.Env = cfg.Env
	} else {
		cmd.Env = os.Environ()
	}

	// Assigning the same writer to both streams makes os/exec share one
	// pipe, giving a true byte-interleaved merge.
	var buf bytes.Buffer
	var sink io.Writer = &buf
	if cfg.Echo != nil {
		sink = io.MultiWriter(&buf, cfg.Echo)
	}
	cmd.Stdout = sink
	cmd.Stderr = sink

	start := time.Now()
	err := cmd.Run()
	result := &RunResult{
		Output:   buf.Bytes(),
		Duration: time.Since(start),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.ExitCode = 0
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		err = nil
	default:
		// Spawn failure: no exit status was produced.
		return result, err
	}

	return result, nil
}

// LookPath reports whether a binary is resolvable in PATH.
func LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
