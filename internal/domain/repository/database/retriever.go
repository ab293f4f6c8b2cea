package database

import "context"

// Retriever loads a record by id. A missing record yields apperr.ErrNotFound.
type Retriever[T any] interface {
	GetByID(ctx context.Context, id string) (*T, error)
}
