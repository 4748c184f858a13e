// Package job defines the value object describing one command execution
// request and its outcome.
package job

import (
	"fmt"

	"github.com/dkonishi/kicker/config"
)

// Notification is a (title, message) pair dispatched to the notification
// collaborator.
type Notification struct {
	Title   string
	Message string
}

// Job describes one command invocation. It is constructed, passed through
// the work pipeline, mutated in place by the execution step, then
// discarded. There is no persistence.
//
// The four message/notification fields follow an explicit-override-beats-
// computed-default rule: once assigned (including an explicit empty or
// nil assignment) the stored value is returned forever; unassigned fields
// compute their default from the current Command, Output, ExitCode and
// silent flag on every read.
type Job struct {
	// Command is the shell command line to run.
	Command string

	// ExitCode is the subprocess exit status, set after execution.
	ExitCode int

	// Output is the captured combined stdout+stderr, trimmed of
	// surrounding whitespace, set after execution.
	Output string

	// ID correlates log lines and trace spans for one execution.
	// Assigned by the pipeline.
	ID string

	cfg *config.Config

	printBefore  Attr[string]
	printAfter   Attr[string]
	notifyBefore Attr[*Notification]
	notifyAfter  Attr[*Notification]
}

// New creates a Job for the given command line.
func New(cfg *config.Config, command string) *Job {
	return &Job{Command: command, cfg: cfg}
}

// Success reports whether the command exited with status zero.
func (j *Job) Success() bool {
	return j.ExitCode == 0
}

func (j *Job) silent() bool {
	return j.cfg != nil && j.cfg.Silent
}

// PrintBefore returns the message logged before execution.
// Defaults to "Executing: {command}".
func (j *Job) PrintBefore() string {
	return j.printBefore.Or(func() string {
		return "Executing: " + j.Command
	})
}

// SetPrintBefore overrides the before-execution message. An empty string
// suppresses it.
func (j *Job) SetPrintBefore(msg string) {
	j.printBefore.Set(msg)
}

// PrintAfter returns the raw text printed after execution. Defaults to a
// full output dump only when running silent and the command failed;
// otherwise empty.
func (j *Job) PrintAfter() string {
	return j.printAfter.Or(func() string {
		if j.silent() && !j.Success() {
			return j.Output
		}
		return ""
	})
}

// SetPrintAfter overrides the after-execution dump. An empty string
// suppresses it.
func (j *Job) SetPrintAfter(msg string) {
	j.printAfter.Set(msg)
}

// NotifyBefore returns the notification dispatched before execution, or
// nil for none. Defaults to ("Kicker: Executing", command) unless silent.
func (j *Job) NotifyBefore() *Notification {
	return j.notifyBefore.Or(func() *Notification {
		if j.silent() {
			return nil
		}
		return &Notification{Title: "Kicker: Executing", Message: j.Command}
	})
}

// SetNotifyBefore overrides the before-execution notification. Nil
// suppresses it.
func (j *Job) SetNotifyBefore(n *Notification) {
	j.notifyBefore.Set(n)
}

// NotifyAfter returns the notification dispatched after execution. The
// default title reflects success or failure; the default message is the
// captured output unless silent.
func (j *Job) NotifyAfter() *Notification {
	return j.notifyAfter.Or(func() *Notification {
		title := "Kicker: Success"
		if !j.Success() {
			title = fmt.Sprintf("Kicker: Failed (%d)", j.ExitCode)
		}
		message := j.Output
		if j.silent() {
			message = ""
		}
		return &Notification{Title: title, Message: message}
	})
}

// SetNotifyAfter overrides the after-execution notification. Nil
// suppresses it.
func (j *Job) SetNotifyAfter(n *Notification) {
	j.notifyAfter.Set(n)
}
