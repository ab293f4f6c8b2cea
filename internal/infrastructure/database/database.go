package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"petstar/pkg/logger"
)

const (
	PetCollection     = "pets"
	PostingCollection = "postings"
	VideoCollection   = "videos"
	UserCollection    = "users"
)

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			UseJSONStructTags: true,
			NilSliceAsEmpty:   true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	for _, spec := range collectionSpecs() {
		if err := initCollection(db, spec); err != nil {
			return nil, err
		}
	}

	return db, nil
}

func (db *Database) collection(name string) *mongo.Collection {
	return db.Client.Database(db.DBName).Collection(name)
}

func initCollection(db *Database, spec collectionSpec) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": spec.name})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	logger.Info("creating collection", "name", spec.name)

	collOpts := options.CreateCollection().SetValidator(bson.M{"$jsonSchema": spec.schema})
	if err := db.Client.Database(db.DBName).CreateCollection(ctx, spec.name, collOpts); err != nil {
		return err
	}

	if len(spec.indexes) == 0 {
		return nil
	}

	_, err = db.collection(spec.name).Indexes().CreateMany(ctx, spec.indexes)

	return err
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
