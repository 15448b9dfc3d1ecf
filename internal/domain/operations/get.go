package opdomain

import "context"

type OperationGetter interface {
	GetOperation(ctx context.Context, args *GetOperationArgs) (*GetOperationResult, error)
}

type GetOperationArgs struct {
	Name string
}

type GetOperationResult struct {
	Operation *Operation
}
