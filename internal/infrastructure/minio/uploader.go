package minio

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"

	"petstar/internal/infrastructure/metrics"
	"petstar/pkg/logger"
)

type Uploader struct {
	minioClient *minio.Client
	cfg         StorageConfig
}

func NewUploader(minioClient *minio.Client, cfg StorageConfig) *Uploader {
	return &Uploader{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (u *Uploader) Put(ctx context.Context, key string, body io.Reader, size int64,
	contentType string,
) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := u.minioClient.PutObject(ctx, u.cfg.Bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	metrics.RecordObjectOperation("put", err, time.Since(start).Seconds())
	if err != nil {
		logger.Error("failed to upload object", "key", key, "err", err)

		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return key, nil
}
