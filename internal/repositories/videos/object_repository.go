package videorepo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	videodomain "github.com/10Narratives/veogen/internal/domain/videos"
	"github.com/minio/minio-go/v7"
)

// ObjectStorage is the subset of *minio.Client used here.
type ObjectStorage interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// ObjectRepository uploads payloads to an S3-compatible bucket.
type ObjectRepository struct {
	objectStorage ObjectStorage
	bucketName    string
	prefix        string
}

func NewObjectRepository(ctx context.Context, objectStorage ObjectStorage, bucketName, prefix string) (*ObjectRepository, error) {
	if objectStorage == nil {
		return nil, fmt.Errorf("object storage client is required")
	}
	if bucketName == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	exists, err := objectStorage.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("cannot check if videos bucket exists: %w", err)
	}

	if !exists {
		err := objectStorage.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("cannot create videos bucket: %w", err)
		}
	}

	return &ObjectRepository{
		objectStorage: objectStorage,
		bucketName:    bucketName,
		prefix:        prefix,
	}, nil
}

func (r *ObjectRepository) SaveVideo(ctx context.Context, args *videodomain.SaveVideoArgs) (*videodomain.SaveVideoResult, error) {
	if err := validateSaveArgs(args); err != nil {
		return nil, err
	}

	key := objectKey(r.prefix, args.Path)
	contentType := args.Video.MIMEType
	if contentType == "" {
		contentType = "video/mp4"
	}

	info, err := r.objectStorage.PutObject(ctx, r.bucketName, key,
		bytes.NewReader(args.Video.Data), int64(len(args.Video.Data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return nil, fmt.Errorf("cannot upload video %q: %w", key, err)
	}

	return &videodomain.SaveVideoResult{
		Location: fmt.Sprintf("s3://%s/%s", r.bucketName, key),
		Size:     info.Size,
	}, nil
}

func objectKey(prefix, p string) string {
	key := strings.TrimPrefix(path.Clean("/"+strings.ReplaceAll(p, "\\", "/")), "/")
	if prefix == "" {
		return key
	}
	return path.Join(prefix, key)
}
