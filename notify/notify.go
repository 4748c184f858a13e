// Package notify defines the notification collaborator consumed by the
// execution pipeline, with desktop senders backed by native OS tools and
// an optional rate-limited wrapper.
package notify

import "context"

// Notifier receives (title, message) pairs from the pipeline. Delivery
// failures are logged by the caller, never fatal.
type Notifier interface {
	Notify(ctx context.Context, title, message string) error
}

// Func adapts a function to the Notifier interface.
type Func func(ctx context.Context, title, message string) error

// Notify implements Notifier.
func (f Func) Notify(ctx context.Context, title, message string) error {
	return f(ctx, title, message)
}

// Noop is a Notifier that discards everything.
type Noop struct{}

// Notify implements Notifier.
func (Noop) Notify(context.Context, string, string) error { return nil }
