package kicker

import (
	"context"

	"github.com/dkonishi/kicker/config"
	"github.com/dkonishi/kicker/executor"
	"github.com/dkonishi/kicker/job"
	"github.com/dkonishi/kicker/notify"
)

// =============================================================================
// Core Types
// =============================================================================

// Job describes one command invocation and its outcome.
type Job = job.Job

// Notification is a (title, message) pair for the notification
// collaborator.
type Notification = job.Notification

// Runner is the execution pipeline.
type Runner = executor.Runner

// Builder creates configured Runner instances.
type Builder = executor.Builder

// WorkFunc is the unit of work run between the before and after hooks.
type WorkFunc = executor.WorkFunc

// Hook extends the pipeline around the built-in hooks.
type Hook = executor.Hook

// Config carries the process-wide execution flags.
type Config = config.Config

// Notifier receives notifications from the pipeline.
type Notifier = notify.Notifier

// =============================================================================
// Errors
// =============================================================================

// Common errors returned by the library.
var (
	// ErrInvalidWork indicates pipeline input that is neither a command
	// string nor an options map.
	ErrInvalidWork = executor.ErrInvalidWork

	// ErrUnknownOption indicates an unrecognized Job option key.
	ErrUnknownOption = job.ErrUnknownOption

	// ErrInvalidOption indicates a Job option value of the wrong type.
	ErrInvalidOption = job.ErrInvalidOption

	// ErrMissingCommand indicates Job options without a command.
	ErrMissingCommand = job.ErrMissingCommand
)

// =============================================================================
// Factory Functions
// =============================================================================

// New creates a Runner with default settings.
func New() (*Runner, error) {
	return executor.NewBuilder().Build()
}

// NewBuilder creates a runner builder.
//
// Example:
//
//	runner, err := kicker.NewBuilder().
//	    WithConfig(cfg).
//	    WithNotifier(notify.NewDesktop()).
//	    Build()
func NewBuilder() *Builder {
	return executor.NewBuilder()
}

// =============================================================================
// Default Runner
// =============================================================================

// defaultRunner backs the package-level convenience functions. The
// surrounding application replaces it via SetDefault when it builds a
// configured runner.
var defaultRunner = mustDefaultRunner()

func mustDefaultRunner() *Runner {
	r, err := executor.NewBuilder().Build()
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the runner used by the package-level functions.
func Default() *Runner {
	return defaultRunner
}

// SetDefault replaces the runner used by the package-level functions.
func SetDefault(r *Runner) {
	if r != nil {
		defaultRunner = r
	}
}

// =============================================================================
// Convenience Functions
// =============================================================================

// Execute runs a shell command through the default runner.
//
// Example:
//
//	j, err := kicker.Execute(ctx, "rake test")
func Execute(ctx context.Context, commandOrOptions any) (*Job, error) {
	return defaultRunner.Execute(ctx, commandOrOptions)
}

// PerformWork runs an arbitrary unit of work through the default
// runner's logging/notification envelope.
func PerformWork(ctx context.Context, commandOrOptions any, work WorkFunc) (*Job, error) {
	return defaultRunner.PerformWork(ctx, commandOrOptions, work)
}

// Log logs a message through the default runner's console.
func Log(msg string) {
	defaultRunner.Log(msg)
}

// LastCommandSucceeded reports whether the most recent command run by
// the default runner exited with status zero.
func LastCommandSucceeded() bool {
	return defaultRunner.LastCommandSucceeded()
}

// LastCommandStatus returns the exit status of the most recent command
// run by the default runner.
func LastCommandStatus() int {
	return defaultRunner.LastCommandStatus()
}
