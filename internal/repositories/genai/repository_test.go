package genairepo

import (
	"context"
	"errors"
	"net/http"
	"testing"

	opdomain "github.com/10Narratives/veogen/internal/domain/operations"
	videodomain "github.com/10Narratives/veogen/internal/domain/videos"
	"github.com/containerd/errdefs"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	op  *genai.GenerateVideosOperation
	err error

	calls  int
	model  string
	prompt string
	config *genai.GenerateVideosConfig
}

func (m *fakeModels) GenerateVideos(_ context.Context, model string, prompt string, _ *genai.Image, config *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error) {
	m.calls++
	m.model = model
	m.prompt = prompt
	m.config = config
	return m.op, m.err
}

type fakeOperations struct {
	ops []*genai.GenerateVideosOperation
	err error

	names []string
}

func (o *fakeOperations) GetVideosOperation(_ context.Context, op *genai.GenerateVideosOperation, _ *genai.GetOperationConfig) (*genai.GenerateVideosOperation, error) {
	o.names = append(o.names, op.Name)
	if o.err != nil {
		return nil, o.err
	}
	next := o.ops[0]
	o.ops = o.ops[1:]
	return next, nil
}

type fakeFiles struct {
	data []byte
	err  error

	calls int
}

func (f *fakeFiles) Download(_ context.Context, _ genai.DownloadURI, _ *genai.DownloadFileConfig) ([]byte, error) {
	f.calls++
	return f.data, f.err
}

func TestRepository_SubmitOperation(t *testing.T) {
	t.Parallel()

	t.Run("nil args -> ErrInvalidArgument", func(t *testing.T) {
		t.Parallel()

		r := &Repository{models: &fakeModels{}}
		_, err := r.SubmitOperation(context.Background(), nil)
		require.ErrorIs(t, err, opdomain.ErrInvalidArgument)
	})

	t.Run("empty prompt -> ErrInvalidArgument", func(t *testing.T) {
		t.Parallel()

		models := &fakeModels{}
		r := &Repository{models: models}
		_, err := r.SubmitOperation(context.Background(), &opdomain.SubmitOperationArgs{Model: "veo", Prompt: "  "})
		require.ErrorIs(t, err, opdomain.ErrInvalidArgument)
		require.Zero(t, models.calls)
	})

	t.Run("api error is classified", func(t *testing.T) {
		t.Parallel()

		models := &fakeModels{err: genai.APIError{Code: http.StatusUnauthorized, Message: "API key not valid"}}
		r := &Repository{models: models}

		_, err := r.SubmitOperation(context.Background(), &opdomain.SubmitOperationArgs{Model: "veo", Prompt: "cat"})
		require.True(t, errdefs.IsUnauthorized(err))
		require.False(t, opdomain.IsTransient(err))
	})

	t.Run("ok -> passes config and returns pending operation", func(t *testing.T) {
		t.Parallel()

		models := &fakeModels{op: &genai.GenerateVideosOperation{Name: "models/veo/operations/1"}}
		r := &Repository{models: models}

		res, err := r.SubmitOperation(context.Background(), &opdomain.SubmitOperationArgs{
			Model:           "veo-2.0-generate-001",
			Prompt:          "two people staring at a cryptic drawing",
			NegativePrompt:  "cartoon",
			AspectRatio:     "16:9",
			NumberOfVideos:  2,
			DurationSeconds: 8,
		})
		require.NoError(t, err)
		require.Equal(t, "models/veo/operations/1", res.Operation.Name)
		require.False(t, res.Operation.Done)
		require.Nil(t, res.Operation.Result)

		require.Equal(t, "veo-2.0-generate-001", models.model)
		require.Equal(t, "two people staring at a cryptic drawing", models.prompt)
		require.Equal(t, int32(2), models.config.NumberOfVideos)
		require.Equal(t, "16:9", models.config.AspectRatio)
		require.Equal(t, "cartoon", models.config.NegativePrompt)
		require.NotNil(t, models.config.DurationSeconds)
		require.Equal(t, int32(8), *models.config.DurationSeconds)
	})
}

func TestRepository_GetOperation(t *testing.T) {
	t.Parallel()

	t.Run("empty name -> ErrInvalidArgument", func(t *testing.T) {
		t.Parallel()

		r := &Repository{operations: &fakeOperations{}}
		_, err := r.GetOperation(context.Background(), &opdomain.GetOperationArgs{})
		require.ErrorIs(t, err, opdomain.ErrInvalidArgument)
	})

	t.Run("unavailable is transient", func(t *testing.T) {
		t.Parallel()

		r := &Repository{operations: &fakeOperations{err: genai.APIError{Code: http.StatusServiceUnavailable}}}
		_, err := r.GetOperation(context.Background(), &opdomain.GetOperationArgs{Name: "operations/1"})
		require.True(t, opdomain.IsTransient(err))
	})

	t.Run("done -> result with videos and filter info", func(t *testing.T) {
		t.Parallel()

		ops := &fakeOperations{ops: []*genai.GenerateVideosOperation{{
			Name: "operations/1",
			Done: true,
			Response: &genai.GenerateVideosResponse{
				GeneratedVideos: []*genai.GeneratedVideo{
					{Video: &genai.Video{URI: "https://files/1", MIMEType: "video/mp4"}},
					nil,
					{Video: &genai.Video{VideoBytes: []byte("blob")}},
				},
				RAIMediaFilteredCount:   1,
				RAIMediaFilteredReasons: []string{"unsafe"},
			},
		}}}
		r := &Repository{operations: ops}

		res, err := r.GetOperation(context.Background(), &opdomain.GetOperationArgs{Name: "operations/1"})
		require.NoError(t, err)
		require.Equal(t, []string{"operations/1"}, ops.names)

		op := res.Operation
		require.True(t, op.Done)
		require.Nil(t, op.Error)
		require.NotNil(t, op.Result)
		require.Len(t, op.Result.Videos, 2)
		require.Equal(t, "https://files/1", op.Result.Videos[0].URI)
		require.Equal(t, []byte("blob"), op.Result.Videos[1].Data)
		require.Equal(t, 1, op.Result.FilteredCount)
		require.Equal(t, []string{"unsafe"}, op.Result.FilteredReasons)
	})

	t.Run("done with error -> operation error", func(t *testing.T) {
		t.Parallel()

		ops := &fakeOperations{ops: []*genai.GenerateVideosOperation{{
			Name:  "operations/1",
			Done:  true,
			Error: map[string]any{"code": float64(3), "message": "prompt rejected"},
		}}}
		r := &Repository{operations: ops}

		res, err := r.GetOperation(context.Background(), &opdomain.GetOperationArgs{Name: "operations/1"})
		require.NoError(t, err)
		require.Nil(t, res.Operation.Result)
		require.Equal(t, &opdomain.OperationError{Code: 3, Message: "prompt rejected"}, res.Operation.Error)
	})
}

func TestRepository_DownloadVideo(t *testing.T) {
	t.Parallel()

	t.Run("missing uri -> ErrInvalidArgument", func(t *testing.T) {
		t.Parallel()

		r := &Repository{files: &fakeFiles{}}
		_, err := r.DownloadVideo(context.Background(), &videodomain.DownloadVideoArgs{Video: &videodomain.Video{}})
		require.ErrorIs(t, err, videodomain.ErrInvalidArgument)
	})

	t.Run("vertex backend -> not implemented", func(t *testing.T) {
		t.Parallel()

		files := &fakeFiles{}
		r := &Repository{files: files, backend: genai.BackendVertexAI}
		_, err := r.DownloadVideo(context.Background(), &videodomain.DownloadVideoArgs{Video: &videodomain.Video{URI: "gs://b/o"}})
		require.True(t, errdefs.IsNotImplemented(err))
		require.Zero(t, files.calls)
	})

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		files := &fakeFiles{data: []byte("mp4")}
		r := &Repository{files: files, backend: genai.BackendGeminiAPI}
		res, err := r.DownloadVideo(context.Background(), &videodomain.DownloadVideoArgs{Video: &videodomain.Video{URI: "https://files/1"}})
		require.NoError(t, err)
		require.Equal(t, []byte("mp4"), res.Data)
	})
}

func TestClassifyError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{name: "429", err: genai.APIError{Code: http.StatusTooManyRequests}, check: errdefs.IsResourceExhausted},
		{name: "500", err: genai.APIError{Code: http.StatusInternalServerError}, check: errdefs.IsInternal},
		{name: "504", err: genai.APIError{Code: http.StatusGatewayTimeout}, check: errdefs.IsUnavailable},
		{name: "403", err: genai.APIError{Code: http.StatusForbidden}, check: errdefs.IsPermissionDenied},
		{name: "404", err: genai.APIError{Code: http.StatusNotFound}, check: errdefs.IsNotFound},
		{name: "400", err: genai.APIError{Code: http.StatusBadRequest}, check: errdefs.IsInvalidArgument},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := classifyError(tt.err)
			require.True(t, tt.check(err))

			var apiErr genai.APIError
			require.True(t, errors.As(err, &apiErr))
		})
	}

	t.Run("context errors are left untouched", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, context.Canceled, classifyError(context.Canceled))
	})
}
