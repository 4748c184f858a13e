package executor

import "github.com/dkonishi/kicker/job"

// LastResult is the single-slot record of the most recently completed
// job. It is overwritten on each run and read from the same execution
// thread; it is not a queue and not thread-safe.
type LastResult struct {
	Valid     bool
	Succeeded bool
	Status    int
}

// recordLast overwrites the last-execution slot.
func (r *Runner) recordLast(j *job.Job) {
	r.last = LastResult{
		Valid:     true,
		Succeeded: j.Success(),
		Status:    j.ExitCode,
	}
}

// LastCommandSucceeded reports whether the most recently completed job
// exited with status zero. False when nothing has run yet.
func (r *Runner) LastCommandSucceeded() bool {
	return r.last.Valid && r.last.Succeeded
}

// LastCommandStatus returns the exit status of the most recently
// completed job. Zero when nothing has run yet.
func (r *Runner) LastCommandStatus() int {
	return r.last.Status
}

// LastResult returns a copy of the last-execution slot.
func (r *Runner) LastResult() LastResult {
	return r.last
}
