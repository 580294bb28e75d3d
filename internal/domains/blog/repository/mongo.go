package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogging-backend/internal/domains/blog"
	"blogging-backend/internal/infrastructure/database"
)

// mongoRepository implements blog.Repository on the blogs collection
type mongoRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewMongoRepository creates a new blog repository instance
func NewMongoRepository(coll *mongo.Collection) blog.Repository {
	return &mongoRepository{
		coll: coll,
		now:  time.Now,
	}
}

func (r *mongoRepository) Create(ctx context.Context, b *blog.Blog) error {
	now := r.now().UTC()
	b.ID = primitive.NewObjectID()
	b.CreatedAt = now
	b.UpdatedAt = now
	// $push needs arrays, never null
	b.Tags = orEmpty(b.Tags)
	b.Subcategory = orEmpty(b.Subcategory)

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}
	return nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*blog.Blog, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoRepository) List(ctx context.Context, filter *blog.ListFilter) ([]blog.Blog, error) {
	cursor, err := r.coll.Find(ctx, filter.ToBSON())
	if err != nil {
		return nil, fmt.Errorf("find blogs: %w", err)
	}
	defer cursor.Close(ctx)

	blogs := make([]blog.Blog, 0)
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("decode blogs: %w", err)
	}
	return blogs, nil
}

func (r *mongoRepository) FindOne(ctx context.Context, filter *blog.DeleteFilter) (*blog.Blog, error) {
	return r.findOne(ctx, filter.ToBSON())
}

func (r *mongoRepository) Update(ctx context.Context, id primitive.ObjectID, changes blog.Changes) (*blog.Blog, error) {
	update := bson.M{
		"$set": bson.M{
			"title":       changes.Title,
			"body":        changes.Body,
			"isPublished": changes.IsPublished,
			"publishedAt": changes.PublishedAt,
			"updatedAt":   r.now().UTC(),
		},
		"$push": bson.M{
			"tags":        bson.M{"$each": orEmpty(changes.Tags)},
			"subcategory": bson.M{"$each": orEmpty(changes.Subcategory)},
		},
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": id}, update)
}

func (r *mongoRepository) SoftDelete(ctx context.Context, id primitive.ObjectID, at time.Time) (*blog.Blog, error) {
	at = at.UTC()
	// Conditional on isDeleted so a repeated delete never moves deletedAt
	filter := bson.M{"_id": id, "isDeleted": false}
	update := bson.M{
		"$set": bson.M{
			"isDeleted": true,
			"deletedAt": at,
			"updatedAt": at,
		},
	}
	return r.findOneAndUpdate(ctx, filter, update)
}

func (r *mongoRepository) findOne(ctx context.Context, filter bson.M) (*blog.Blog, error) {
	var b blog.Blog
	if err := r.coll.FindOne(ctx, filter).Decode(&b); err != nil {
		if database.IsNoDocuments(err) {
			return nil, blog.ErrBlogNotFound
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}
	return &b, nil
}

func (r *mongoRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*blog.Blog, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var b blog.Blog
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&b); err != nil {
		if database.IsNoDocuments(err) {
			return nil, blog.ErrBlogNotFound
		}
		return nil, fmt.Errorf("update blog: %w", err)
	}
	return &b, nil
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
