package database

import "context"

type Remover interface {
	Delete(ctx context.Context, id string) error
}
