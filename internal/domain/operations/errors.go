package opdomain

import (
	"errors"

	"github.com/containerd/errdefs"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrSubmissionFailed = errors.New("cannot submit operation")
	ErrPollFailed       = errors.New("cannot poll operation")
	ErrWaitTimeout      = errors.New("operation did not complete in time")
	ErrOperationFailed  = errors.New("operation failed")
)

// IsTransient reports whether a status query failure is worth retrying.
// Repositories classify remote failures with errdefs; anything unclassified
// is treated as permanent.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	return errdefs.IsUnavailable(err) ||
		errdefs.IsResourceExhausted(err) ||
		errdefs.IsInternal(err)
}
