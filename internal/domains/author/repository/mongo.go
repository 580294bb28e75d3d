package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogging-backend/internal/domains/author"
	"blogging-backend/internal/infrastructure/database"
	"blogging-backend/pkg/cache"
	"blogging-backend/pkg/logger"
)

// mongoRepository implements author.Repository on the authors collection.
// Author existence is cached: authors are never updated or deleted, so a
// positive answer can never go stale.
type mongoRepository struct {
	coll     *mongo.Collection
	cache    cache.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

// Cache key constants
const (
	authorExistsKeyPrefix = "author:exists:"
)

// NewMongoRepository creates a new author repository instance
func NewMongoRepository(coll *mongo.Collection, c cache.Cache, cacheTTL time.Duration) author.Repository {
	if c == nil {
		c = cache.Noop{}
	}
	return &mongoRepository{
		coll:     coll,
		cache:    c,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

func (r *mongoRepository) Create(ctx context.Context, a *author.Author) error {
	now := r.now().UTC()
	a.ID = primitive.NewObjectID()
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		if database.IsDuplicateKey(err) {
			return fmt.Errorf("insert author %s: %w", a.Email, author.ErrDuplicateEmail)
		}
		return fmt.Errorf("insert author: %w", err)
	}
	return nil
}

func (r *mongoRepository) FindByEmail(ctx context.Context, email string) (*author.Author, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count authors by email: %w", err)
	}
	return n > 0, nil
}

func (r *mongoRepository) ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	cacheKey := authorExistsKeyPrefix + id.Hex()

	var exists bool
	if hit, err := r.cache.Get(ctx, cacheKey, &exists); err == nil && hit && exists {
		return true, nil
	} else if err != nil {
		logger.Warn("author cache read failed", map[string]interface{}{"key": cacheKey, "error": err.Error()})
	}

	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count authors by id: %w", err)
	}

	// Misses are not cached; the author may register later
	if n > 0 {
		if err := r.cache.Set(ctx, cacheKey, true, r.cacheTTL); err != nil {
			logger.Warn("author cache write failed", map[string]interface{}{"key": cacheKey, "error": err.Error()})
		}
	}
	return n > 0, nil
}

func (r *mongoRepository) findOne(ctx context.Context, filter bson.M) (*author.Author, error) {
	var a author.Author
	err := r.coll.FindOne(ctx, filter).Decode(&a)
	if err != nil {
		if database.IsNoDocuments(err) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("find author: %w", err)
	}
	return &a, nil
}
