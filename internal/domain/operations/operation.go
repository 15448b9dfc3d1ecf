package opdomain

import (
	"fmt"

	videodomain "github.com/10Narratives/veogen/internal/domain/videos"
)

// Operation is the local view of a remote long-running generation job.
// Each poll replaces it wholesale.
type Operation struct {
	Name     string
	Metadata map[string]any
	Done     bool
	Result   *Result
	Error    *OperationError
}

type Result struct {
	Videos          []*videodomain.Video
	FilteredCount   int
	FilteredReasons []string
}

type OperationError struct {
	Code    int
	Message string
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("code %d: %s", e.Code, e.Message)
}
