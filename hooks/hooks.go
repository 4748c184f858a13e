// Package hooks provides ready-made pipeline hooks.
package hooks

import (
	"context"
	"fmt"
	"time"

	"github.com/dkonishi/kicker/executor"
	"github.com/dkonishi/kicker/job"
)

// Funcs adapts a pair of functions to the executor.Hook interface.
// Either function may be nil.
type Funcs struct {
	Before func(ctx context.Context, j *job.Job) error
	After  func(ctx context.Context, j *job.Job) error
}

var _ executor.Hook = Funcs{}

// BeforeJob implements executor.Hook.
func (f Funcs) BeforeJob(ctx context.Context, j *job.Job) error {
	if f.Before == nil {
		return nil
	}
	return f.Before(ctx, j)
}

// AfterJob implements executor.Hook.
func (f Funcs) AfterJob(ctx context.Context, j *job.Job) error {
	if f.After == nil {
		return nil
	}
	return f.After(ctx, j)
}

// Timing logs the wall clock duration of each completed job. Starts are
// tracked per job ID; the pipeline runs jobs one at a time, so the
// tracking map is not synchronized.
type Timing struct {
	log   func(msg string)
	now   func() time.Time
	start map[string]time.Time
}

var _ executor.Hook = (*Timing)(nil)

// NewTiming creates a Timing hook that reports through log, typically a
// console's Log method.
func NewTiming(log func(msg string)) *Timing {
	return &Timing{
		log:   log,
		now:   time.Now,
		start: make(map[string]time.Time),
	}
}

// BeforeJob implements executor.Hook.
func (t *Timing) BeforeJob(_ context.Context, j *job.Job) error {
	t.start[j.ID] = t.now()
	return nil
}

// AfterJob implements executor.Hook.
func (t *Timing) AfterJob(_ context.Context, j *job.Job) error {
	started, ok := t.start[j.ID]
	if !ok {
		return nil
	}
	delete(t.start, j.ID)

	t.log(fmt.Sprintf("Elapsed: %s", t.now().Sub(started).Round(10*time.Millisecond)))
	return nil
}
