package videodomain

import (
	"context"
	"time"
)

type VideoDownloader interface {
	DownloadVideo(ctx context.Context, args *DownloadVideoArgs) (*DownloadVideoResult, error)
}

type DownloadVideoArgs struct {
	Video *Video
}

type DownloadVideoResult struct {
	Data []byte
}

type VideoSaver interface {
	SaveVideo(ctx context.Context, args *SaveVideoArgs) (*SaveVideoResult, error)
}

type SaveVideoArgs struct {
	Video *Video
	Path  string
}

type SaveVideoResult struct {
	Location string
	Size     int64
}

type VideoGenerator interface {
	GenerateVideo(ctx context.Context, args *GenerateVideoArgs) (*GenerateVideoResult, error)
}

type GenerateVideoArgs struct {
	Prompt          string
	Model           string
	NegativePrompt  string
	AspectRatio     string
	NumberOfVideos  int32
	DurationSeconds int32
	PollInterval    time.Duration
	MaxWait         time.Duration
	OutputPath      string
}

type GenerateVideoResult struct {
	Operation string
	Videos    []*Video
	Locations []string
	Polls     int
}

type VideoResumer interface {
	ResumeVideo(ctx context.Context, args *ResumeVideoArgs) (*GenerateVideoResult, error)
}

type ResumeVideoArgs struct {
	Name         string
	PollInterval time.Duration
	MaxWait      time.Duration
	OutputPath   string
}

type VideosSaver interface {
	SaveVideos(ctx context.Context, args *SaveVideosArgs) (*SaveVideosResult, error)
}

type SaveVideosArgs struct {
	Videos     []*Video
	OutputPath string
}

type SaveVideosResult struct {
	Locations []string
}
