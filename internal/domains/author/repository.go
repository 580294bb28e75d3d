package author

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines data access for the authors collection
type Repository interface {
	// Create inserts a new author and sets its ID and timestamps.
	// Errors: ErrDuplicateEmail when the unique email index rejects it
	Create(ctx context.Context, author *Author) error

	// FindByEmail returns ErrAuthorNotFound if not exists
	FindByEmail(ctx context.Context, email string) (*Author, error)

	// ExistsByEmail is the registration pre-check
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByID resolves a blog's author reference
	ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}
