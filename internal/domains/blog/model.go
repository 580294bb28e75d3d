package blog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is a post in the blogs collection. Blogs are soft-deleted only.
// PublishedAt is non-nil exactly when IsPublished is true.
type Blog struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Body        string             `json:"body" bson:"body"`
	AuthorID    primitive.ObjectID `json:"authorId" bson:"authorId"`
	Category    string             `json:"category" bson:"category"`
	Tags        []string           `json:"tags" bson:"tags"`
	Subcategory []string           `json:"subcategory" bson:"subcategory"`

	IsPublished bool       `json:"isPublished" bson:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt" bson:"publishedAt"`
	IsDeleted   bool       `json:"isDeleted" bson:"isDeleted"`
	DeletedAt   *time.Time `json:"deletedAt" bson:"deletedAt"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// OwnedBy reports whether the token subject authored the blog
func (b *Blog) OwnedBy(subject string) bool {
	return b.AuthorID.Hex() == subject
}

// Changes is the full set of fields written by an update.
// Tags and Subcategory are appended to the stored sequences.
type Changes struct {
	Title       string
	Body        string
	Tags        []string
	Subcategory []string
	IsPublished bool
	PublishedAt *time.Time
}
