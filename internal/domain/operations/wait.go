package opdomain

import (
	"context"
	"time"
)

type OperationWaiter interface {
	WaitOperation(ctx context.Context, args *WaitOperationArgs) (*WaitOperationResult, error)
}

// WaitOperationArgs configures a wait. A zero MaxWait waits without limit.
type WaitOperationArgs struct {
	Operation    *Operation
	PollInterval time.Duration
	MaxWait      time.Duration
}

type WaitOperationResult struct {
	Operation *Operation
	Polls     int
}
