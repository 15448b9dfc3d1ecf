package genairepo

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	opdomain "github.com/10Narratives/veogen/internal/domain/operations"
	videodomain "github.com/10Narratives/veogen/internal/domain/videos"
	sliceutils "github.com/10Narratives/veogen/pkg/slices"
	"github.com/containerd/errdefs"
	"google.golang.org/genai"
	"google.golang.org/grpc/codes"
)

type Models interface {
	GenerateVideos(ctx context.Context, model string, prompt string, image *genai.Image, config *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error)
}

type Operations interface {
	GetVideosOperation(ctx context.Context, operation *genai.GenerateVideosOperation, config *genai.GetOperationConfig) (*genai.GenerateVideosOperation, error)
}

type Files interface {
	Download(ctx context.Context, uri genai.DownloadURI, config *genai.DownloadFileConfig) ([]byte, error)
}

// Repository talks to the video generation endpoints of the GenAI API.
type Repository struct {
	models     Models
	operations Operations
	files      Files
	backend    genai.Backend
}

func NewRepository(client *genai.Client) (*Repository, error) {
	if client == nil {
		return nil, errors.New("genai client is required")
	}

	return &Repository{
		models:     client.Models,
		operations: client.Operations,
		files:      client.Files,
		backend:    client.ClientConfig().Backend,
	}, nil
}

func (r *Repository) SubmitOperation(ctx context.Context, args *opdomain.SubmitOperationArgs) (*opdomain.SubmitOperationResult, error) {
	if args == nil {
		return nil, opdomain.ErrInvalidArgument
	}
	if strings.TrimSpace(args.Model) == "" {
		return nil, fmt.Errorf("%w: model is required", opdomain.ErrInvalidArgument)
	}
	if strings.TrimSpace(args.Prompt) == "" {
		return nil, fmt.Errorf("%w: prompt is required", opdomain.ErrInvalidArgument)
	}

	config := &genai.GenerateVideosConfig{
		NumberOfVideos: args.NumberOfVideos,
		AspectRatio:    args.AspectRatio,
		NegativePrompt: args.NegativePrompt,
	}
	if args.DurationSeconds > 0 {
		duration := args.DurationSeconds
		config.DurationSeconds = &duration
	}

	op, err := r.models.GenerateVideos(ctx, args.Model, args.Prompt, nil, config)
	if err != nil {
		return nil, classifyError(err)
	}
	if op == nil {
		return nil, errors.New("service returned no operation")
	}

	return &opdomain.SubmitOperationResult{Operation: operationFromGenAI(op)}, nil
}

func (r *Repository) GetOperation(ctx context.Context, args *opdomain.GetOperationArgs) (*opdomain.GetOperationResult, error) {
	if args == nil || args.Name == "" {
		return nil, fmt.Errorf("%w: operation name is required", opdomain.ErrInvalidArgument)
	}

	op, err := r.operations.GetVideosOperation(ctx, &genai.GenerateVideosOperation{Name: args.Name}, nil)
	if err != nil {
		return nil, classifyError(err)
	}
	if op == nil {
		return nil, errors.New("service returned no operation")
	}

	return &opdomain.GetOperationResult{Operation: operationFromGenAI(op)}, nil
}

func (r *Repository) DownloadVideo(ctx context.Context, args *videodomain.DownloadVideoArgs) (*videodomain.DownloadVideoResult, error) {
	if args == nil || args.Video == nil || args.Video.URI == "" {
		return nil, fmt.Errorf("%w: video uri is required", videodomain.ErrInvalidArgument)
	}
	if r.backend == genai.BackendVertexAI {
		return nil, fmt.Errorf("%w: %s: vertex results must be read from the output bucket",
			errdefs.ErrNotImplemented, args.Video.URI)
	}

	video := &genai.Video{URI: args.Video.URI, MIMEType: args.Video.MIMEType}
	data, err := r.files.Download(ctx, genai.NewDownloadURIFromVideo(video), nil)
	if err != nil {
		return nil, classifyError(err)
	}

	return &videodomain.DownloadVideoResult{Data: data}, nil
}

func operationFromGenAI(op *genai.GenerateVideosOperation) *opdomain.Operation {
	out := &opdomain.Operation{
		Name:     op.Name,
		Metadata: op.Metadata,
		Done:     op.Done,
	}

	if len(op.Error) > 0 {
		out.Error = operationErrorFromGenAI(op.Error)
		return out
	}
	if op.Done && op.Response != nil {
		out.Result = resultFromGenAI(op.Response)
	}

	return out
}

func resultFromGenAI(resp *genai.GenerateVideosResponse) *opdomain.Result {
	generated := sliceutils.Filter(resp.GeneratedVideos, func(v *genai.GeneratedVideo) bool {
		return v != nil && v.Video != nil
	})

	return &opdomain.Result{
		Videos:          sliceutils.Map(generated, videoFromGenAI),
		FilteredCount:   int(resp.RAIMediaFilteredCount),
		FilteredReasons: resp.RAIMediaFilteredReasons,
	}
}

func videoFromGenAI(v *genai.GeneratedVideo) *videodomain.Video {
	return &videodomain.Video{
		URI:      v.Video.URI,
		MIMEType: v.Video.MIMEType,
		Data:     v.Video.VideoBytes,
	}
}

func operationErrorFromGenAI(m map[string]any) *opdomain.OperationError {
	out := &opdomain.OperationError{Code: int(codes.Unknown)}

	switch code := m["code"].(type) {
	case float64:
		out.Code = int(code)
	case int:
		out.Code = code
	case int32:
		out.Code = int(code)
	case int64:
		out.Code = int(code)
	}

	if msg, ok := m["message"].(string); ok && msg != "" {
		out.Message = msg
	} else {
		out.Message = fmt.Sprint(m)
	}

	return out
}

// classifyError tags remote failures with an errdefs class so callers can
// tell transient failures from permanent ones.
func classifyError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		class := classFromStatus(apiErr.Code)
		if class == nil {
			return err
		}
		return fmt.Errorf("%w: %w", class, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", errdefs.ErrUnavailable, err)
	}

	return err
}

func classFromStatus(code int) error {
	switch code {
	case http.StatusBadRequest:
		return errdefs.ErrInvalidArgument
	case http.StatusUnauthorized:
		return errdefs.ErrUnauthenticated
	case http.StatusForbidden:
		return errdefs.ErrPermissionDenied
	case http.StatusNotFound:
		return errdefs.ErrNotFound
	case http.StatusConflict:
		return errdefs.ErrConflict
	case http.StatusTooManyRequests:
		return errdefs.ErrResourceExhausted
	case http.StatusInternalServerError:
		return errdefs.ErrInternal
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return errdefs.ErrUnavailable
	default:
		return nil
	}
}
