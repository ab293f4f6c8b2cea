package database

import (
	"context"

	"petstar/internal/domain/model"
)

type Repository[T any] interface {
	Retriever[T]
	Writer[T]
	Remover
}

type (
	PostingRepository = Repository[model.Posting]
	VideoRepository   = Repository[model.Video]
	PetRepository     = Repository[model.Pet]
)

type UserRepository interface {
	Repository[model.User]
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
