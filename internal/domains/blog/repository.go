package blog

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines data access for the blogs collection
type Repository interface {
	// Create inserts the blog and sets its ID and timestamps
	Create(ctx context.Context, blog *Blog) error

	// FindByID returns ErrBlogNotFound if not exists, deleted or not
	FindByID(ctx context.Context, id primitive.ObjectID) (*Blog, error)

	// List returns every blog matching the filter, possibly none
	List(ctx context.Context, filter *ListFilter) ([]Blog, error)

	// FindOne returns the first blog matching the filter, deleted or not.
	// Errors: ErrBlogNotFound
	FindOne(ctx context.Context, filter *DeleteFilter) (*Blog, error)

	// Update applies changes in a single write and returns the new document.
	// Errors: ErrBlogNotFound
	Update(ctx context.Context, id primitive.ObjectID, changes Changes) (*Blog, error)

	// SoftDelete marks a non-deleted blog as deleted and returns it.
	// Errors: ErrBlogNotFound when no non-deleted blog has that id
	SoftDelete(ctx context.Context, id primitive.ObjectID, at time.Time) (*Blog, error)
}
