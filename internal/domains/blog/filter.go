package blog

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogging-backend/internal/shared/validator"
)

// ════════════════════════════════════════════════════════════════
// LIST FILTER
// ════════════════════════════════════════════════════════════════

// ListFilter selects published, non-deleted blogs
type ListFilter struct {
	AuthorID    *primitive.ObjectID
	Category    string
	Tags        []string
	Subcategory []string
}

func NewListFilter() *ListFilter {
	return &ListFilter{}
}

// WithAuthorID applies only when raw is a valid store reference
func (f *ListFilter) WithAuthorID(raw string) *ListFilter {
	if id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw)); err == nil {
		f.AuthorID = &id
	}
	return f
}

func (f *ListFilter) WithCategory(raw string) *ListFilter {
	f.Category = strings.TrimSpace(raw)
	return f
}

// WithTags takes a comma-separated list; blogs must carry all of them
func (f *ListFilter) WithTags(raw string) *ListFilter {
	f.Tags = validator.SplitList(raw)
	return f
}

func (f *ListFilter) WithSubcategory(raw string) *ListFilter {
	f.Subcategory = validator.SplitList(raw)
	return f
}

func (f *ListFilter) ToBSON() bson.M {
	filter := bson.M{
		"isDeleted":   false,
		"deletedAt":   nil,
		"isPublished": true,
	}
	if f.AuthorID != nil {
		filter["authorId"] = *f.AuthorID
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if len(f.Tags) > 0 {
		filter["tags"] = bson.M{"$all": f.Tags}
	}
	if len(f.Subcategory) > 0 {
		filter["subcategory"] = bson.M{"$all": f.Subcategory}
	}
	return filter
}

// ════════════════════════════════════════════════════════════════
// DELETE FILTER
// ════════════════════════════════════════════════════════════════

// DeleteFilter finds one blog to soft-delete. It is always scoped to the
// owner's blogs, whatever authorId the caller asks for.
type DeleteFilter struct {
	Owner       primitive.ObjectID
	Category    string
	Tags        []string
	Subcategory []string
	IsPublished *bool

	// set when the requested authorId cannot be the owner
	foreign bool
}

func NewDeleteFilter(owner primitive.ObjectID) *DeleteFilter {
	return &DeleteFilter{Owner: owner}
}

func (f *DeleteFilter) WithCategory(raw string) *DeleteFilter {
	f.Category = strings.TrimSpace(raw)
	return f
}

// WithAuthorID narrows to raw, which only matches when it is the owner
func (f *DeleteFilter) WithAuthorID(raw string) *DeleteFilter {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return f
	}
	id, err := primitive.ObjectIDFromHex(raw)
	f.foreign = err != nil || id != f.Owner
	return f
}

func (f *DeleteFilter) WithTags(raw string) *DeleteFilter {
	f.Tags = validator.SplitList(raw)
	return f
}

func (f *DeleteFilter) WithSubcategory(raw string) *DeleteFilter {
	f.Subcategory = validator.SplitList(raw)
	return f
}

func (f *DeleteFilter) WithPublished(published *bool) *DeleteFilter {
	f.IsPublished = published
	return f
}

// Satisfiable is false when no blog of the owner can match
func (f *DeleteFilter) Satisfiable() bool {
	return !f.foreign
}

func (f *DeleteFilter) ToBSON() bson.M {
	filter := bson.M{"authorId": f.Owner}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if len(f.Tags) > 0 {
		filter["tags"] = bson.M{"$all": f.Tags}
	}
	if len(f.Subcategory) > 0 {
		filter["subcategory"] = bson.M{"$all": f.Subcategory}
	}
	if f.IsPublished != nil {
		filter["isPublished"] = *f.IsPublished
	}
	return filter
}
