package opsrv

import (
	"context"
	"time"
)

// Clock is the poller's only source of time and its only suspension point,
// retry waits included. Sleep returns an error only when ctx is done.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// clockTimer drives backoff retry waits through a Clock. Start blocks for the
// whole wait and leaves the tick buffered, so C is ready once Start returns
// unless ctx was canceled.
type clockTimer struct {
	ctx   context.Context
	clock Clock
	c     chan time.Time
}

func newClockTimer(ctx context.Context, clock Clock) *clockTimer {
	return &clockTimer{ctx: ctx, clock: clock, c: make(chan time.Time, 1)}
}

func (t *clockTimer) Start(d time.Duration) {
	if err := t.clock.Sleep(t.ctx, d); err != nil {
		return
	}
	t.c <- t.clock.Now()
}

func (t *clockTimer) Stop() {}

func (t *clockTimer) C() <-chan time.Time {
	return t.c
}
