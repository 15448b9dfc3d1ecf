package longrunning_test

import (
	"encoding/json"
	"testing"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	opdomain "github.com/10Narratives/veogen/internal/domain/operations"
	videodomain "github.com/10Narratives/veogen/internal/domain/videos"
	"github.com/10Narratives/veogen/internal/transport/longrunning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestOperationToProto(t *testing.T) {
	t.Parallel()

	t.Run("pending with metadata", func(t *testing.T) {
		t.Parallel()

		pb, err := longrunning.OperationToProto(&opdomain.Operation{
			Name:     "operations/1",
			Metadata: map[string]any{"progress": 40},
		})
		require.NoError(t, err)
		assert.Equal(t, "operations/1", pb.GetName())
		assert.False(t, pb.GetDone())
		assert.Nil(t, pb.GetResult())

		var md structpb.Struct
		require.NoError(t, pb.GetMetadata().UnmarshalTo(&md))
		assert.Equal(t, float64(40), md.GetFields()["progress"].GetNumberValue())
	})

	t.Run("failed", func(t *testing.T) {
		t.Parallel()

		pb, err := longrunning.OperationToProto(&opdomain.Operation{
			Name:  "operations/2",
			Done:  true,
			Error: &opdomain.OperationError{Code: 3, Message: "bad prompt"},
		})
		require.NoError(t, err)
		require.IsType(t, &longrunningpb.Operation_Error{}, pb.GetResult())
		assert.Equal(t, int32(3), pb.GetError().GetCode())
		assert.Equal(t, "bad prompt", pb.GetError().GetMessage())
	})

	t.Run("succeeded", func(t *testing.T) {
		t.Parallel()

		pb, err := longrunning.OperationToProto(&opdomain.Operation{
			Name: "operations/3",
			Done: true,
			Result: &opdomain.Result{Videos: []*videodomain.Video{
				{URI: "files/abc", MIMEType: "video/mp4", Data: []byte("blob")},
			}},
		})
		require.NoError(t, err)

		var resp structpb.Struct
		require.NoError(t, pb.GetResponse().UnmarshalTo(&resp))

		videos := resp.GetFields()["videos"].GetListValue().GetValues()
		require.Len(t, videos, 1)
		fields := videos[0].GetStructValue().GetFields()
		assert.Equal(t, "files/abc", fields["uri"].GetStringValue())
		assert.Equal(t, float64(4), fields["sizeBytes"].GetNumberValue())
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		_, err := longrunning.OperationToProto(nil)
		require.ErrorIs(t, err, opdomain.ErrInvalidArgument)
	})
}

func TestMarshalOperation(t *testing.T) {
	t.Parallel()

	out, err := longrunning.MarshalOperation(&opdomain.Operation{
		Name: "operations/4",
		Done: true,
		Result: &opdomain.Result{
			FilteredCount:   1,
			FilteredReasons: []string{"unsafe"},
		},
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "operations/4", decoded["name"])
	assert.Equal(t, true, decoded["done"])

	resp, ok := decoded["response"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "type.googleapis.com/google.protobuf.Struct", resp["@type"])
}
