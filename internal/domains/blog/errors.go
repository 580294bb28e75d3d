package blog

import (
	"errors"

	"blogging-backend/internal/shared/apperror"
)

// Create validation
var (
	ErrEmptyBody        = apperror.Validation("Invalid request parameters. Please provide blog details")
	ErrTitleRequired    = apperror.Validation("Blog Title is required")
	ErrBodyRequired     = apperror.Validation("Blog body is required")
	ErrAuthorIDRequired = apperror.Validation("Author id is required")
	ErrAuthorNotExist   = apperror.Validation("Author does not exist")
	ErrCategoryRequired = apperror.Validation("Blog category is required")
)

// InvalidAuthorID is returned when authorId is not a store reference
func InvalidAuthorID(id string) *apperror.Error {
	return apperror.Validationf("%s is not a valid author id", id)
}

// Listing
var (
	ErrNoBlogsFound = apperror.NotFound("No blogs found")
	ErrInvalidQuery = apperror.Validation("Invalid query parameters")
)

// Update and ownership
var (
	ErrNoSuchBlog    = apperror.NotFound("No such blog found")
	ErrNotOwner      = apperror.Authorization("Unauthorized access! Owner info doesn't match")
	ErrMandatoryBody = apperror.NotFound("Mandatory body not given")
)

// Delete by id
var (
	ErrBlogIDMissing  = apperror.NotFound("Blog Id not found")
	ErrDeleteNotFound = apperror.NotFound("Blog not found")
	ErrAlreadyDeleted = apperror.NotFound("Blog already deleted")
)

// Delete by filter
var (
	ErrFilterMissing      = apperror.NotFound("Mandatory body missing")
	ErrNoMatchingBlog     = apperror.NotFound("The given data is invalid")
	ErrMatchedBlogDeleted = apperror.Conflict("Blog has been already deleted")
	ErrPublishedInvalid   = apperror.Validation("isPublished must be true or false")
)

// Repository
var ErrBlogNotFound = errors.New("blog not found")
