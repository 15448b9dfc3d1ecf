package videorepo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	videodomain "github.com/10Narratives/veogen/internal/domain/videos"
)

// FileRepository writes payloads to the local filesystem.
type FileRepository struct {
	dir string
}

// NewFileRepository resolves relative paths against dir. An empty dir means
// the working directory.
func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{dir: dir}
}

func (r *FileRepository) SaveVideo(ctx context.Context, args *videodomain.SaveVideoArgs) (*videodomain.SaveVideoResult, error) {
	if err := validateSaveArgs(args); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := args.Path
	if !filepath.IsAbs(path) && r.dir != "" {
		path = filepath.Join(r.dir, path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create output directory: %w", err)
	}

	if err := writeFileAtomic(path, args.Video.Data); err != nil {
		return nil, err
	}

	return &videodomain.SaveVideoResult{
		Location: path,
		Size:     int64(len(args.Video.Data)),
	}, nil
}

// writeFileAtomic never leaves a truncated file at path.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("cannot move video into place: %w", err)
	}
	return nil
}

func validateSaveArgs(args *videodomain.SaveVideoArgs) error {
	if args == nil || args.Video == nil {
		return fmt.Errorf("%w: video is required", videodomain.ErrInvalidArgument)
	}
	if args.Path == "" {
		return fmt.Errorf("%w: output path is required", videodomain.ErrInvalidArgument)
	}
	if !args.Video.HasData() {
		return fmt.Errorf("%w: video has no data", videodomain.ErrInvalidArgument)
	}
	return nil
}
