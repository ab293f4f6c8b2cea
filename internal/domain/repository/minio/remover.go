package minio

import "context"

type Remover interface {
	Remove(ctx context.Context, key string) error
	// RemoveMany deletes keys in one batch and reports failures per key.
	RemoveMany(ctx context.Context, keys []string) map[string]error
}
