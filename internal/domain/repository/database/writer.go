package database

import "context"

type Writer[T any] interface {
	Insert(ctx context.Context, record *T) error
	// Update replaces the stored record with the same id.
	Update(ctx context.Context, record *T) error
}
