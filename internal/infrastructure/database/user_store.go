package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"petstar/internal/domain/model"
)

type UserStore struct {
	*Store[model.User]
}

func NewUserStore(db *Database) *UserStore {
	return &UserStore{
		Store: newStore(db, UserCollection, func(u *model.User) string { return u.ID }),
	}
}

func (s *UserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	count, err := s.db.collection(UserCollection).CountDocuments(ctx, bson.M{"email": email},
		options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
