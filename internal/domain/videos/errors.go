package videodomain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNoVideos          = errors.New("operation produced no videos")
	ErrDownloadFailed    = errors.New("cannot download video")
	ErrPersistenceFailed = errors.New("cannot persist video")
)

// PersistenceError reports a failed save. Videos keeps the in-memory payloads
// so the save can be retried without re-running the generation job.
type PersistenceError struct {
	Videos []*Video
	Saved  []string
	Path   string
	Err    error
}

func (e *PersistenceError) Error() string {
	msg := fmt.Sprintf("%s: %s: %v", ErrPersistenceFailed, e.Path, e.Err)
	if len(e.Saved) > 0 {
		msg += " (already saved: " + strings.Join(e.Saved, ", ") + ")"
	}
	return msg
}

func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistenceFailed, e.Err}
}

// JobError tags a failure that happened after the generation job was
// submitted, so the job can be resumed by Operation.
type JobError struct {
	Operation string
	Err       error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("operation %s: %v", e.Operation, e.Err)
}

func (e *JobError) Unwrap() error {
	return e.Err
}
