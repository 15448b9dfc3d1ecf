package veogenapp

import (
	"context"
	"fmt"

	videodomain "github.com/10Narratives/veogen/internal/domain/videos"
	genairepo "github.com/10Narratives/veogen/internal/repositories/genai"
	videorepo "github.com/10Narratives/veogen/internal/repositories/videos"
	opsrv "github.com/10Narratives/veogen/internal/services/operations"
	videosrv "github.com/10Narratives/veogen/internal/services/videos"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

type App struct {
	cfg *Config
	log *zap.Logger

	operationService *opsrv.Service
	videoService     *videosrv.Service
}

func NewApp(ctx context.Context, cfg *Config, log *zap.Logger, opts ...opsrv.ServiceOption) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log = log.With(zap.String("run", uuid.NewString()))

	client, err := newGenAIClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	remote, err := genairepo.NewRepository(client)
	if err != nil {
		return nil, err
	}

	storage, err := newVideoStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Debug("video storage ready", zap.String("kind", cfg.Storage.Kind))

	opts = append([]opsrv.ServiceOption{opsrv.WithRetryPolicy(cfg.RetryPolicy())}, opts...)
	operationService, err := opsrv.NewService(remote, log, opts...)
	if err != nil {
		return nil, err
	}

	videoService, err := videosrv.NewService(operationService, remote, storage, log)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:              cfg,
		log:              log,
		operationService: operationService,
		videoService:     videoService,
	}, nil
}

func (a *App) Operations() *opsrv.Service {
	return a.operationService
}

func (a *App) Videos() *videosrv.Service {
	return a.videoService
}

// GenerateArgs builds a generation request from the configured job settings.
func (a *App) GenerateArgs() *videodomain.GenerateVideoArgs {
	return &videodomain.GenerateVideoArgs{
		Prompt:          a.cfg.Prompt,
		Model:           a.cfg.Model,
		NegativePrompt:  a.cfg.Generation.NegativePrompt,
		AspectRatio:     a.cfg.Generation.AspectRatio,
		NumberOfVideos:  a.cfg.Generation.NumberOfVideos,
		DurationSeconds: a.cfg.Generation.DurationSeconds,
		PollInterval:    a.cfg.PollInterval,
		MaxWait:         a.cfg.MaxWait,
		OutputPath:      a.cfg.OutputPath,
	}
}

func (a *App) ResumeArgs(name string) *videodomain.ResumeVideoArgs {
	return &videodomain.ResumeVideoArgs{
		Name:         name,
		PollInterval: a.cfg.PollInterval,
		MaxWait:      a.cfg.MaxWait,
		OutputPath:   a.cfg.OutputPath,
	}
}

func newGenAIClient(ctx context.Context, cfg *Config) (*genai.Client, error) {
	clientCfg := &genai.ClientConfig{}

	switch cfg.Backend.Kind {
	case BackendVertex:
		clientCfg.Backend = genai.BackendVertexAI
		clientCfg.Project = cfg.Backend.Project
		clientCfg.Location = cfg.Backend.Location
	default:
		clientCfg.Backend = genai.BackendGeminiAPI
		clientCfg.APIKey = cfg.Credential()
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("cannot create genai client: %w", err)
	}

	return client, nil
}

func newVideoStorage(ctx context.Context, cfg *Config) (videosrv.VideoStorage, error) {
	if cfg.Storage.Kind != StorageKindObject {
		return videorepo.NewFileRepository(cfg.Storage.Dir), nil
	}

	objCfg := cfg.Storage.ObjectStorage
	objectStorage, err := minio.New(objCfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(objCfg.User, objCfg.Password, ""),
		Secure: objCfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to object storage: %w", err)
	}

	repo, err := videorepo.NewObjectRepository(ctx, objectStorage, objCfg.BucketName, objCfg.Prefix)
	if err != nil {
		return nil, err
	}

	return repo, nil
}
