package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingNotifier counts deliveries that reach it.
type countingNotifier struct {
	calls int
}

func (c *countingNotifier) Notify(context.Context, string, string) error {
	c.calls++
	return nil
}

func TestThrottledAllowsFirstDelivery(t *testing.T) {
	inner := &countingNotifier{}
	n := NewThrottled(inner, time.Minute)

	require.NoError(t, n.Notify(context.Background(), "t", "m"))
	assert.Equal(t, 1, inner.calls)
}

func TestThrottledDropsBurst(t *testing.T) {
	inner := &countingNotifier{}
	n := NewThrottled(inner, time.Minute)

	for i := 0; i < 5; i++ {
		require.NoError(t, n.Notify(context.Background(), "t", "m"))
	}
	assert.Equal(t, 1, inner.calls, "burst should collapse to one delivery")
}

func TestThrottledAllowsAfterInterval(t *testing.T) {
	inner := &countingNotifier{}
	n := NewThrottled(inner, 10*time.Millisecond)

	require.NoError(t, n.Notify(context.Background(), "t", "m"))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, n.Notify(context.Background(), "t", "m"))

	assert.Equal(t, 2, inner.calls)
}

func TestThrottledZeroIntervalDisablesThrottling(t *testing.T) {
	inner := &countingNotifier{}
	n := NewThrottled(inner, 0)

	for i := 0; i < 3; i++ {
		require.NoError(t, n.Notify(context.Background(), "t", "m"))
	}
	assert.Equal(t, 3, inner.calls)
}
