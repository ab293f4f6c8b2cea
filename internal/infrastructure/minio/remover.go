package minio

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"

	"petstar/internal/infrastructure/metrics"
	"petstar/pkg/logger"
)

type Remover struct {
	minioClient *minio.Client
	cfg         StorageConfig
}

func NewRemover(minioClient *minio.Client, cfg StorageConfig) *Remover {
	return &Remover{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (r *Remover) Remove(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Timeout)*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := r.minioClient.RemoveObject(ctx, r.cfg.Bucket, key, minio.RemoveObjectOptions{})
	metrics.RecordObjectOperation("remove", err, time.Since(start).Seconds())
	if err != nil {
		logger.Error("failed to remove object", "key", key, "err", err)

		return err
	}

	return nil
}

// RemoveMany issues a single batch delete. The returned map only holds keys that failed.
func (r *Remover) RemoveMany(ctx context.Context, keys []string) map[string]error {
	failed := make(map[string]error)
	if len(keys) == 0 {
		return failed
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Timeout)*time.Millisecond)
	defer cancel()

	objects := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		objects <- minio.ObjectInfo{Key: key}
	}
	close(objects)

	start := time.Now()
	for removeErr := range r.minioClient.RemoveObjects(ctx, r.cfg.Bucket, objects, minio.RemoveObjectsOptions{}) {
		logger.Error("failed to remove object in batch", "key", removeErr.ObjectName, "err", removeErr.Err)
		failed[removeErr.ObjectName] = removeErr.Err
	}

	var batchErr error
	if len(failed) > 0 {
		batchErr = errPartialBatch
	}
	metrics.RecordObjectOperation("remove_many", batchErr, time.Since(start).Seconds())

	return failed
}
