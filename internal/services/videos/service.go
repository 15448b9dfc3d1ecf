package videosrv

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	opdomain "github.com/10Narratives/veogen/internal/domain/operations"
	videodomain "github.com/10Narratives/veogen/internal/domain/videos"
	"go.uber.org/zap"
)

//mockery:generate: true
type OperationService interface {
	opdomain.OperationSubmitter
	opdomain.OperationGetter
	opdomain.OperationWaiter
}

//mockery:generate: true
type VideoDownloader interface {
	videodomain.VideoDownloader
}

//mockery:generate: true
type VideoStorage interface {
	videodomain.VideoSaver
}

type Service struct {
	operationService OperationService
	downloader       VideoDownloader
	storage          VideoStorage
	log              *zap.Logger
}

func NewService(
	operationService OperationService,
	downloader VideoDownloader,
	storage VideoStorage,
	log *zap.Logger,
) (*Service, error) {
	if operationService == nil {
		return nil, errors.New("operation service is required")
	}
	if downloader == nil {
		return nil, errors.New("video downloader is required")
	}
	if storage == nil {
		return nil, errors.New("video storage is required")
	}
	if log == nil {
		return nil, errors.New("logger is required")
	}

	return &Service{
		operationService: operationService,
		downloader:       downloader,
		storage:          storage,
		log:              log,
	}, nil
}

// GenerateVideo submits a generation job, waits for it and persists every
// produced video. Failures after submission are *videodomain.JobError; a
// failed save wraps *videodomain.PersistenceError, which keeps the payloads
// for SaveVideos.
func (s *Service) GenerateVideo(ctx context.Context, args *videodomain.GenerateVideoArgs) (*videodomain.GenerateVideoResult, error) {
	if args == nil {
		return nil, fmt.Errorf("%w: options are required", videodomain.ErrInvalidArgument)
	}
	if strings.TrimSpace(args.OutputPath) == "" {
		return nil, fmt.Errorf("%w: output path is required", videodomain.ErrInvalidArgument)
	}

	submitted, err := s.operationService.SubmitOperation(ctx, &opdomain.SubmitOperationArgs{
		Model:           args.Model,
		Prompt:          args.Prompt,
		NegativePrompt:  args.NegativePrompt,
		AspectRatio:     args.AspectRatio,
		NumberOfVideos:  args.NumberOfVideos,
		DurationSeconds: args.DurationSeconds,
	})
	if err != nil {
		return nil, err
	}

	res, err := s.complete(ctx, submitted.Operation, 0, args.PollInterval, args.MaxWait, args.OutputPath)
	if err != nil {
		return nil, &videodomain.JobError{Operation: submitted.Operation.Name, Err: err}
	}

	return res, nil
}

// ResumeVideo picks up an operation submitted earlier, waits for it and
// persists its videos.
func (s *Service) ResumeVideo(ctx context.Context, args *videodomain.ResumeVideoArgs) (*videodomain.GenerateVideoResult, error) {
	if args == nil || args.Name == "" {
		return nil, fmt.Errorf("%w: operation name is required", videodomain.ErrInvalidArgument)
	}
	if strings.TrimSpace(args.OutputPath) == "" {
		return nil, fmt.Errorf("%w: output path is required", videodomain.ErrInvalidArgument)
	}

	current, err := s.operationService.GetOperation(ctx, &opdomain.GetOperationArgs{Name: args.Name})
	if err != nil {
		return nil, err
	}

	res, err := s.complete(ctx, current.Operation, 1, args.PollInterval, args.MaxWait, args.OutputPath)
	if err != nil {
		return nil, &videodomain.JobError{Operation: args.Name, Err: err}
	}

	return res, nil
}

func (s *Service) SaveVideos(ctx context.Context, args *videodomain.SaveVideosArgs) (*videodomain.SaveVideosResult, error) {
	if args == nil || len(args.Videos) == 0 {
		return nil, fmt.Errorf("%w: no videos to save", videodomain.ErrInvalidArgument)
	}
	if strings.TrimSpace(args.OutputPath) == "" {
		return nil, fmt.Errorf("%w: output path is required", videodomain.ErrInvalidArgument)
	}

	paths := OutputPaths(args.OutputPath, len(args.Videos))
	locations := make([]string, 0, len(args.Videos))

	for i, video := range args.Videos {
		res, err := s.storage.SaveVideo(ctx, &videodomain.SaveVideoArgs{Video: video, Path: paths[i]})
		if err != nil {
			return nil, &videodomain.PersistenceError{
				Videos: args.Videos,
				Saved:  locations,
				Path:   paths[i],
				Err:    err,
			}
		}

		s.log.Info("video saved",
			zap.String("location", res.Location),
			zap.Int64("bytes", res.Size),
		)
		locations = append(locations, res.Location)
	}

	return &videodomain.SaveVideosResult{Locations: locations}, nil
}

func (s *Service) complete(
	ctx context.Context,
	op *opdomain.Operation,
	polls int,
	pollInterval, maxWait time.Duration,
	outputPath string,
) (*videodomain.GenerateVideoResult, error) {
	waited, err := s.operationService.WaitOperation(ctx, &opdomain.WaitOperationArgs{
		Operation:    op,
		PollInterval: pollInterval,
		MaxWait:      maxWait,
	})
	if err != nil {
		return nil, err
	}

	op = waited.Operation
	if op == nil || op.Result == nil {
		return nil, fmt.Errorf("%w: completed without result", opdomain.ErrOperationFailed)
	}
	if len(op.Result.Videos) == 0 {
		if op.Result.FilteredCount > 0 {
			return nil, fmt.Errorf("%w: %s: %d filtered: %s", videodomain.ErrNoVideos,
				op.Name, op.Result.FilteredCount, strings.Join(op.Result.FilteredReasons, "; "))
		}
		return nil, fmt.Errorf("%w: %s", videodomain.ErrNoVideos, op.Name)
	}

	videos, err := s.fetch(ctx, op.Result.Videos)
	if err != nil {
		return nil, err
	}

	saved, err := s.SaveVideos(ctx, &videodomain.SaveVideosArgs{Videos: videos, OutputPath: outputPath})
	if err != nil {
		return nil, err
	}

	return &videodomain.GenerateVideoResult{
		Operation: op.Name,
		Videos:    videos,
		Locations: saved.Locations,
		Polls:     polls + waited.Polls,
	}, nil
}

// fetch downloads every video that was returned by reference only.
func (s *Service) fetch(ctx context.Context, videos []*videodomain.Video) ([]*videodomain.Video, error) {
	fetched := make([]*videodomain.Video, 0, len(videos))
	for _, video := range videos {
		if video == nil {
			continue
		}
		if video.HasData() {
			fetched = append(fetched, video)
			continue
		}
		if video.URI == "" {
			return nil, fmt.Errorf("%w: video has neither data nor uri", videodomain.ErrDownloadFailed)
		}

		res, err := s.downloader.DownloadVideo(ctx, &videodomain.DownloadVideoArgs{Video: video})
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", videodomain.ErrDownloadFailed, video.URI, err)
		}
		if res == nil || len(res.Data) == 0 {
			return nil, fmt.Errorf("%w: %s: empty payload", videodomain.ErrDownloadFailed, video.URI)
		}

		s.log.Debug("video downloaded", zap.String("uri", video.URI), zap.Int("bytes", len(res.Data)))
		fetched = append(fetched, &videodomain.Video{URI: video.URI, MIMEType: video.MIMEType, Data: res.Data})
	}

	if len(fetched) == 0 {
		return nil, videodomain.ErrNoVideos
	}
	return fetched, nil
}

// OutputPaths names n files after base: base itself, then name_1.ext, name_2.ext.
func OutputPaths(base string, n int) []string {
	if n <= 0 {
		return nil
	}

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	paths := make([]string, n)
	paths[0] = base
	for i := 1; i < n; i++ {
		paths[i] = fmt.Sprintf("%s_%d%s", stem, i, ext)
	}
	return paths
}
