package opdomain

import "context"

type OperationSubmitter interface {
	SubmitOperation(ctx context.Context, args *SubmitOperationArgs) (*SubmitOperationResult, error)
}

type SubmitOperationArgs struct {
	Model           string
	Prompt          string
	NegativePrompt  string
	AspectRatio     string
	NumberOfVideos  int32
	DurationSeconds int32
}

type SubmitOperationResult struct {
	Operation *Operation
}
