package blog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service defines the blog operations. subject is the authenticated
// author id taken from the token.
type Service interface {
	// Create validates the request in order and stores a new blog.
	// The subject is not required to match authorId.
	Create(ctx context.Context, subject string, req CreateBlogRequest) (*Blog, error)

	// List returns published, non-deleted blogs.
	// Errors: ErrNoBlogsFound when nothing matches
	List(ctx context.Context, query ListQuery) ([]Blog, error)

	// Update replaces title and body, appends tags and subcategory.
	// Errors: ErrNoSuchBlog, ErrNotOwner, ErrMandatoryBody
	Update(ctx context.Context, subject, blogID string, req UpdateBlogRequest) (*Blog, error)

	// DeleteByID soft-deletes a blog without an ownership check.
	// Errors: ErrBlogIDMissing, ErrDeleteNotFound, ErrAlreadyDeleted
	DeleteByID(ctx context.Context, subject, blogID string) (*Blog, error)

	// DeleteByFilter soft-deletes the first of the subject's blogs matching
	// the query, anchored on the owned blog named by query.BlogID.
	// Errors: ErrNoSuchBlog, ErrNotOwner, ErrFilterMissing,
	// ErrNoMatchingBlog, ErrMatchedBlogDeleted
	DeleteByFilter(ctx context.Context, subject string, query DeleteQuery) (*Blog, error)
}

// AuthorLookup resolves blog author references
type AuthorLookup interface {
	ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}
