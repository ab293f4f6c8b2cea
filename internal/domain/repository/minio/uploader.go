package minio

import (
	"context"
	"io"
)

type Uploader interface {
	// Put stores body under key and returns the key it was stored under.
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}
