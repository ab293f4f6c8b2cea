package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"petstar/internal/domain/apperr"
	"petstar/internal/domain/model"
	"petstar/pkg/logger"
)

// Store keeps one record type in one collection, keyed by _id.
type Store[T any] struct {
	db         *Database
	collection string
	idOf       func(*T) string
}

func newStore[T any](db *Database, collection string, idOf func(*T) string) *Store[T] {
	return &Store[T]{
		db:         db,
		collection: collection,
		idOf:       idOf,
	}
}

func NewPostingStore(db *Database) *Store[model.Posting] {
	return newStore(db, PostingCollection, func(p *model.Posting) string { return p.ID })
}

func NewVideoStore(db *Database) *Store[model.Video] {
	return newStore(db, VideoCollection, func(v *model.Video) string { return v.ID })
}

func NewPetStore(db *Database) *Store[model.Pet] {
	return newStore(db, PetCollection, func(p *model.Pet) string { return p.ID })
}

func (s *Store[T]) GetByID(ctx context.Context, id string) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	var record T
	err := s.db.collection(s.collection).FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.Detail(apperr.ErrNotFound, "%s %s", s.collection, id)
		}
		logger.Error("failed to retrieve record", "collection", s.collection, "id", id, "err", err)

		return nil, err
	}

	return &record, nil
}

func (s *Store[T]) Insert(ctx context.Context, record *T) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	_, err := s.db.collection(s.collection).InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			conflict := apperr.Detail(apperr.ErrConflict, "%s record already exists", s.collection)

			return fmt.Errorf("%w: %w", conflict, err)
		}
		logger.Error("failed to insert record", "collection", s.collection, "err", err)

		return err
	}

	return nil
}

func (s *Store[T]) Update(ctx context.Context, record *T) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	id := s.idOf(record)
	res, err := s.db.collection(s.collection).ReplaceOne(ctx, bson.M{"_id": id}, record)
	if err != nil {
		logger.Error("failed to update record", "collection", s.collection, "id", id, "err", err)

		return err
	}
	if res.MatchedCount == 0 {
		return apperr.Detail(apperr.ErrNotFound, "%s %s", s.collection, id)
	}

	return nil
}

func (s *Store[T]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	res, err := s.db.collection(s.collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Error("failed to delete record", "collection", s.collection, "id", id, "err", err)

		return err
	}
	if res.DeletedCount == 0 {
		return apperr.Detail(apperr.ErrNotFound, "%s %s", s.collection, id)
	}

	return nil
}
