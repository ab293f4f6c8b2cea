package database

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type collectionSpec struct {
	name    string
	schema  bson.M
	indexes []mongo.IndexModel
}

var (
	idSchema       = bson.M{"bsonType": "string", "minLength": 1}
	ownerSchema    = bson.M{"bsonType": "string", "minLength": 1}
	integerSchema  = bson.M{"bsonType": []string{"int", "long"}, "minimum": 0}
	stringArray    = bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}}
	optionalDate   = bson.M{"bsonType": []string{"date", "null"}}
	visibilityEnum = bson.M{"enum": []string{"PUBLIC", "PRIVATE"}}
)

func collectionSpecs() []collectionSpec {
	return []collectionSpec{
		{
			name: PostingCollection,
			schema: bson.M{
				"bsonType": "object",
				"required": []string{"_id", "pet_id", "owner_id", "visibility", "image_keys", "created_at"},
				"properties": bson.M{
					"_id":           idSchema,
					"pet_id":        idSchema,
					"owner_id":      ownerSchema,
					"title":         bson.M{"bsonType": "string"},
					"content":       bson.M{"bsonType": "string"},
					"visibility":    visibilityEnum,
					"like_count":    integerSchema,
					"comment_count": integerSchema,
					"image_keys":    stringArray,
					"created_at":    bson.M{"bsonType": "date"},
					"updated_at":    bson.M{"bsonType": "date"},
					"published_at":  optionalDate,
				},
			},
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "owner_id", Value: 1}}},
				{Keys: bson.D{{Key: "pet_id", Value: 1}}},
			},
		},
		{
			name: VideoCollection,
			schema: bson.M{
				"bsonType": "object",
				"required": []string{"_id", "pet_id", "owner_id", "status", "visibility", "source_key", "created_at"},
				"properties": bson.M{
					"_id":           idSchema,
					"pet_id":        idSchema,
					"owner_id":      ownerSchema,
					"title":         bson.M{"bsonType": "string"},
					"description":   bson.M{"bsonType": "string"},
					"status":        bson.M{"enum": []string{"UPLOADING", "TRANSCODING", "READY", "FAILED"}},
					"visibility":    visibilityEnum,
					"source_key":    bson.M{"bsonType": "string", "minLength": 1},
					"thumbnail_key": bson.M{"bsonType": "string"},
					"duration_sec":  integerSchema,
					"view_count":    integerSchema,
					"like_count":    integerSchema,
					"comment_count": integerSchema,
					"tags":          stringArray,
					"created_at":    bson.M{"bsonType": "date"},
					"updated_at":    bson.M{"bsonType": "date"},
					"published_at":  optionalDate,
				},
			},
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "owner_id", Value: 1}}},
				{Keys: bson.D{{Key: "pet_id", Value: 1}}},
			},
		},
		{
			name: PetCollection,
			schema: bson.M{
				"bsonType": "object",
				"required": []string{"_id", "owner_id", "name", "gender", "created_at"},
				"properties": bson.M{
					"_id":                idSchema,
					"owner_id":           ownerSchema,
					"name":               bson.M{"bsonType": "string", "minLength": 1},
					"age":                bson.M{"bsonType": []string{"int", "long", "null"}},
					"species":            bson.M{"bsonType": "string"},
					"gender":             bson.M{"enum": []string{"MALE", "FEMALE"}},
					"bio":                bson.M{"bsonType": "string"},
					"profile_image_key":  bson.M{"bsonType": "string"},
					"subscription_count": integerSchema,
					"created_at":         bson.M{"bsonType": "date"},
					"updated_at":         bson.M{"bsonType": "date"},
				},
			},
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "owner_id", Value: 1}}},
			},
		},
		{
			name: UserCollection,
			schema: bson.M{
				"bsonType": "object",
				"required": []string{"_id", "email", "role", "status", "created_at"},
				"properties": bson.M{
					"_id":          idSchema,
					"email":        bson.M{"bsonType": "string", "pattern": "^[^@\\s]+@[^@\\s]+$"},
					"display_name": bson.M{"bsonType": "string"},
					"role":         bson.M{"enum": []string{"USER", "ADMIN"}},
					"status":       bson.M{"enum": []string{"ACTIVE", "DELETED"}},
					"bio":          bson.M{"bsonType": "string"},
					"created_at":   bson.M{"bsonType": "date"},
				},
			},
			indexes: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "email", Value: 1}},
					Options: options.Index().SetUnique(true),
				},
			},
		},
	}
}
