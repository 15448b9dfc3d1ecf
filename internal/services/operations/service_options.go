package opsrv

import (
	"context"
	"time"
)

// Progress is reported once per non-terminal iteration of a wait.
type Progress struct {
	Operation string
	Polls     int
	Elapsed   time.Duration
	Metadata  map[string]any
}

type ProgressFunc func(ctx context.Context, p Progress)

// RetryPolicy bounds retries of transient status query failures.
// MaxAttempts counts the first try; 1 disables retries. RandomizationFactor
// is the backoff jitter, 0 gives exact intervals.
type RetryPolicy struct {
	MaxAttempts         int
	InitialInterval     time.Duration
	MaxInterval         time.Duration
	RandomizationFactor float64
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:         3,
		InitialInterval:     time.Second,
		MaxInterval:         30 * time.Second,
		RandomizationFactor: 0.5,
	}
}

type serviceOptions struct {
	clock    Clock
	retry    RetryPolicy
	progress []ProgressFunc
}

type ServiceOption func(so *serviceOptions)

func defaultServiceOptions() *serviceOptions {
	return &serviceOptions{
		clock: systemClock{},
		retry: DefaultRetryPolicy(),
	}
}

func WithClock(clock Clock) ServiceOption {
	return func(so *serviceOptions) {
		if clock != nil {
			so.clock = clock
		}
	}
}

func WithRetryPolicy(policy RetryPolicy) ServiceOption {
	return func(so *serviceOptions) {
		so.retry = policy
	}
}

func WithProgress(fns ...ProgressFunc) ServiceOption {
	return func(so *serviceOptions) {
		so.progress = append(so.progress, fns...)
	}
}
