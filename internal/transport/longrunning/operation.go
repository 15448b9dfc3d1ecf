// Package longrunning renders domain operations as google.longrunning.Operation
// messages.
package longrunning

import (
	"fmt"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	opdomain "github.com/10Narratives/veogen/internal/domain/operations"
	videodomain "github.com/10Narratives/veogen/internal/domain/videos"
	sliceutils "github.com/10Narratives/veogen/pkg/slices"
	"google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

func OperationToProto(op *opdomain.Operation) (*longrunningpb.Operation, error) {
	if op == nil {
		return nil, fmt.Errorf("%w: operation is required", opdomain.ErrInvalidArgument)
	}

	out := &longrunningpb.Operation{
		Name: op.Name,
		Done: op.Done,
	}

	if len(op.Metadata) > 0 {
		md, err := packStruct(op.Metadata)
		if err != nil {
			return nil, fmt.Errorf("metadata: %w", err)
		}
		out.Metadata = md
	}

	switch {
	case op.Error != nil:
		out.Result = &longrunningpb.Operation_Error{
			Error: &status.Status{Code: int32(op.Error.Code), Message: op.Error.Message},
		}
	case op.Result != nil:
		resp, err := packStruct(resultFields(op.Result))
		if err != nil {
			return nil, fmt.Errorf("response: %w", err)
		}
		out.Result = &longrunningpb.Operation_Response{Response: resp}
	}

	return out, nil
}

// MarshalOperation renders op as indented protojson.
func MarshalOperation(op *opdomain.Operation) ([]byte, error) {
	pb, err := OperationToProto(op)
	if err != nil {
		return nil, err
	}

	return protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(pb)
}

// resultFields describes videos by reference and size; payload bytes are not
// rendered.
func resultFields(res *opdomain.Result) map[string]any {
	videos := sliceutils.Map(res.Videos, func(v *videodomain.Video) any {
		fields := map[string]any{}
		if v == nil {
			return fields
		}
		if v.URI != "" {
			fields["uri"] = v.URI
		}
		if v.MIMEType != "" {
			fields["mimeType"] = v.MIMEType
		}
		if v.HasData() {
			fields["sizeBytes"] = len(v.Data)
		}
		return fields
	})

	fields := map[string]any{"videos": videos}
	if res.FilteredCount > 0 {
		fields["raiMediaFilteredCount"] = res.FilteredCount
		fields["raiMediaFilteredReasons"] = sliceutils.Map(res.FilteredReasons, func(r string) any { return r })
	}
	return fields
}

func packStruct(fields map[string]any) (*anypb.Any, error) {
	st, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	return anypb.New(st)
}
