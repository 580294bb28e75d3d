package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AuthorIndexes enforce email uniqueness in the store, backing the
// registration pre-check against concurrent inserts
func AuthorIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
	}
}

// BlogIndexes serve the list and filtered-delete queries
func BlogIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "isDeleted", Value: 1},
				{Key: "isPublished", Value: 1},
				{Key: "category", Value: 1},
			},
			Options: options.Index().SetName("listing"),
		},
		{
			Keys:    bson.D{{Key: "authorId", Value: 1}},
			Options: options.Index().SetName("author"),
		},
		{
			Keys:    bson.D{{Key: "tags", Value: 1}},
			Options: options.Index().SetName("tags"),
		},
	}
}

// EnsureIndexes creates the indexes of both collections
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection(AuthorsCollection).Indexes().CreateMany(ctx, AuthorIndexes()); err != nil {
		return fmt.Errorf("create author indexes: %w", err)
	}
	if _, err := db.Collection(BlogsCollection).Indexes().CreateMany(ctx, BlogIndexes()); err != nil {
		return fmt.Errorf("create blog indexes: %w", err)
	}
	return nil
}

// IsDuplicateKey reports whether err is a unique index violation
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// IsNoDocuments reports whether err means the query matched nothing
func IsNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
