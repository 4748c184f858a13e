// Package executor provides the command execution pipeline: build a Job,
// run before hooks (logging, notification), execute the work, run after
// hooks, report the outcome.
package executor

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dkonishi/kicker/config"
	"github.com/dkonishi/kicker/console"
	internalexec "github.com/dkonishi/kicker/internal/exec"
	"github.com/dkonishi/kicker/job"
	"github.com/dkonishi/kicker/notify"
	"github.com/dkonishi/kicker/observability"
)

// WorkFunc is the unit of work executed between the before and after
// hooks. It is expected to mutate the Job's ExitCode and Output.
type WorkFunc func(ctx context.Context, j *job.Job) error

// Hook extends the pipeline around the built-in hooks. BeforeJob runs
// before the built-in before behavior and may abort the job; AfterJob
// runs after the built-in after behavior and its errors are logged, not
// propagated, since the work has already happened.
type Hook interface {
	BeforeJob(ctx context.Context, j *job.Job) error
	AfterJob(ctx context.Context, j *job.Job) error
}

// procRunner spawns subprocesses. Satisfied by internal/exec.Runner and
// by test doubles.
type procRunner interface {
	Run(ctx context.Context, cfg *internalexec.RunConfig) (*internalexec.RunResult, error)
}

// Runner is the execution pipeline. It runs jobs one at a time from a
// single thread; there is no parallel execution and no queueing.
type Runner struct {
	cfg       *config.Config
	console   *console.Console
	notifier  notify.Notifier
	telemetry observability.Telemetry
	hooks     []Hook
	proc      procRunner
	last      LastResult
}

// Builder creates configured Runner instances.
type Builder struct {
	cfg       *config.Config
	console   *console.Console
	notifier  notify.Notifier
	telemetry observability.Telemetry
	hooks     []Hook
	proc      procRunner
}

// NewBuilder creates a new runner builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithConfig sets the configuration object consulted by the pipeline and
// its jobs.
func (b *Builder) WithConfig(cfg *config.Config) *Builder {
	b.cfg = cfg
	return b
}

// WithConsole sets the console.
func (b *Builder) WithConsole(c *console.Console) *Builder {
	b.console = c
	return b
}

// WithNotifier sets the notification collaborator.
func (b *Builder) WithNotifier(n notify.Notifier) *Builder {
	b.notifier = n
	return b
}

// WithTelemetry sets the telemetry provider.
func (b *Builder) WithTelemetry(t observability.Telemetry) *Builder {
	b.telemetry = t
	return b
}

// WithHooks adds pipeline hooks.
func (b *Builder) WithHooks(hooks ...Hook) *Builder {
	b.hooks = append(b.hooks, hooks...)
	return b
}

// withProcRunner replaces the subprocess runner. Used by tests.
func (b *Builder) withProcRunner(p procRunner) *Builder {
	b.proc = p
	return b
}

// Build creates the runner, filling unset collaborators with defaults.
func (b *Builder) Build() (*Runner, error) {
	cfg := b.cfg
	if cfg == nil {
		cfg = config.Default()
	}

	cons := b.console
	if cons == nil {
		cons = console.New(cfg, os.Stdout)
	}

	notifier := b.notifier
	if notifier == nil {
		notifier = notify.Noop{}
	}

	telemetry := b.telemetry
	if telemetry == nil {
		telemetry = observability.NoopTelemetry()
	}

	proc := b.proc
	if proc == nil {
		proc = internalexec.NewRunner()
	}

	return &Runner{
		cfg:       cfg,
		console:   cons,
		notifier:  notifier,
		telemetry: telemetry,
		hooks:     b.hooks,
		proc:      proc,
	}, nil
}

// Config returns the runner's configuration object.
func (r *Runner) Config() *config.Config {
	return r.cfg
}

// Console returns the runner's console.
func (r *Runner) Console() *console.Console {
	return r.console
}

// Log logs a message through the runner's console.
func (r *Runner) Log(msg string) {
	r.console.Log(msg)
	_ = r.console.Flush()
}

// PerformWork builds a Job from a command string or an options map, runs
// the before hooks, yields to work, runs the after hooks, records the
// last-execution state and returns the Job.
//
// An error returned by work marks the Job failed (exit code 127 if still
// zero, the error text as output if still empty); the after hooks still
// run and the error is returned alongside the Job.
func (r *Runner) PerformWork(ctx context.Context, commandOrOptions any, work WorkFunc) (*job.Job, error) {
	j, err := r.buildJob(commandOrOptions)
	if err != nil {
		return nil, err
	}
	j.ID = uuid.New().String()

	ctx, end := r.telemetry.StartSpan(ctx, "kicker.perform_work",
		observability.WithAttribute("job.id", j.ID),
		observability.WithAttribute("job.command", j.Command),
	)
	defer end()

	if err := r.before(ctx, j); err != nil {
		_ = r.console.Flush()
		return j, err
	}

	start := time.Now()
	var workErr error
	if work != nil {
		workErr = work(ctx, j)
	}
	if workErr != nil {
		if j.ExitCode == 0 {
			j.ExitCode = 127
		}
		if j.Output == "" {
			j.Output = workErr.Error()
		}
	}

	r.after(ctx, j)
	r.recordLast(j)

	r.telemetry.RecordExecution(j.Success(), time.Since(start).Seconds(), map[string]string{
		"exit_code": strconv.Itoa(j.ExitCode),
	})

	_ = r.console.Flush()
	return j, workErr
}

// buildJob turns the pipeline input into a Job.
func (r *Runner) buildJob(commandOrOptions any) (*job.Job, error) {
	switch v := commandOrOptions.(type) {
	case string:
		return job.New(r.cfg, v), nil
	case map[string]any:
		return job.FromOptions(r.cfg, v)
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidWork, commandOrOptions)
	}
}

// before runs user hooks, then the built-in before behavior: optional
// console clear, before-message log, before-notification.
func (r *Runner) before(ctx context.Context, j *job.Job) error {
	for _, h := range r.hooks {
		if err := h.BeforeJob(ctx, j); err != nil {
			return err
		}
	}

	// Clearing consumes the should-clear toggle so repeated jobs in one
	// run don't re-clear.
	if r.cfg.ClearConsole && r.cfg.ConsumeClearScreen() {
		r.console.Clear()
	}

	if msg := j.PrintBefore(); msg != "" {
		r.console.Log(msg)
	}

	if n := j.NotifyBefore(); n != nil {
		r.dispatch(ctx, n)
	}

	return nil
}

// after runs the built-in after behavior, then user hooks: raw
// after-dump, outcome log, after-notification.
func (r *Runner) after(ctx context.Context, j *job.Job) {
	if msg := j.PrintAfter(); msg != "" {
		r.console.Println(msg)
	}

	r.console.Status(j.Success(), j.ExitCode)

	if n := j.NotifyAfter(); n != nil {
		r.dispatch(ctx, n)
	}

	for _, h := range r.hooks {
		if err := h.AfterJob(ctx, j); err != nil {
			r.console.Log(fmt.Sprintf("Hook failed: %v", err))
		}
	}
}

// dispatch delivers a notification. Delivery failures are logged, never
// fatal.
func (r *Runner) dispatch(ctx context.Context, n *job.Notification) {
	if err := r.notifier.Notify(ctx, n.Title, n.Message); err != nil {
		r.console.Log(fmt.Sprintf("Notification failed: %v", err))
	}
}
