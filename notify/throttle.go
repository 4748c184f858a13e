package notify

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Throttled wraps a Notifier with a minimum delivery interval. Rapid
// re-triggers (a save-happy editor firing the watcher in bursts) collapse
// to one notification per interval; suppressed notifications are dropped,
// not queued.
type Throttled struct {
	inner   Notifier
	limiter *rate.Limiter
}

// NewThrottled wraps inner with the given minimum interval between
// deliveries. A non-positive interval disables throttling.
func NewThrottled(inner Notifier, minInterval time.Duration) *Throttled {
	limit := rate.Inf
	if minInterval > 0 {
		limit = rate.Every(minInterval)
	}
	return &Throttled{
		inner:   inner,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Notify implements Notifier. Deliveries beyond the configured rate are
// silently dropped.
func (t *Throttled) Notify(ctx context.Context, title, message string) error {
	if !t.limiter.Allow() {
		return nil
	}
	return t.inner.Notify(ctx, title, message)
}
