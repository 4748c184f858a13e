// Package kicker executes external shell commands on behalf of a
// file-watching automation tool, captures their combined output and exit
// status, logs progress with timestamps, and dispatches desktop
// notifications before and after execution.
//
// It is a thin orchestration wrapper: there is no scheduler, no watcher
// and no persistence. Its job is to standardize "run a command, report
// what happened."
//
// # Basic Usage
//
//	j, err := kicker.Execute(ctx, "rake test")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(j.Success(), j.Output)
//
// # Custom Runner
//
//	cfg := config.Default()
//	cfg.Silent = true
//
//	runner, _ := kicker.NewBuilder().
//	    WithConfig(cfg).
//	    WithNotifier(notify.NewDesktop()).
//	    Build()
//
//	j, err := runner.Execute(ctx, "make lint")
//
// # Non-shell Work
//
// PerformWork is the generic seam: it gives arbitrary work units the
// same logging and notification envelope as shell commands.
//
//	j, err := runner.PerformWork(ctx, "build docs", func(ctx context.Context, j *job.Job) error {
//	    out, err := buildDocs()
//	    j.Output = out
//	    return err
//	})
//
// # Package Structure
//
//   - kicker: main entry point and convenience functions over a default runner
//   - job: the Job value object with lazily-defaulted, overridable messages
//   - executor: the execute/log/notify pipeline
//   - config: execution flags (silent, quiet, clear-console) and file loading
//   - console: timestamped logging and streaming output mode
//   - notify: notification collaborator and desktop senders
//   - observability: OpenTelemetry spans and metrics
//
// # Subprocess Protocol
//
// Command strings are split into argv tokens with shell-word rules
// (quotes and escapes respected), not passed to a shell; the
// subprocess's standard error is merged into its standard output and
// the combined stream is captured and echoed live.
//
// # Thread Safety
//
// The pipeline is single-threaded and synchronous. One command runs
// to completion before the after hooks run. Runner,
// Console and Config are not safe for concurrent use.
package kicker
