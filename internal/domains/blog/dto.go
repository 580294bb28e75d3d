package blog

import (
	"encoding/json"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogging-backend/internal/shared/request"
	"blogging-backend/internal/shared/validator"
)

// CreateBlogRequest - POST /blogs
type CreateBlogRequest struct {
	Title       *request.Text   `json:"title"`
	Body        *request.Text   `json:"body"`
	AuthorID    *request.Text   `json:"authorId"`
	Category    *request.Text   `json:"category"`
	Tags        json.RawMessage `json:"tags"`
	Subcategory json.RawMessage `json:"subcategory"`
	IsPublished *bool           `json:"isPublished"`
}

// Validate checks the fields that precede the author lookup
func (r CreateBlogRequest) Validate() error {
	if !validator.IsPresent(r.Title) {
		return ErrTitleRequired
	}
	if !validator.IsPresent(r.Body) {
		return ErrBodyRequired
	}
	if !validator.IsPresent(r.AuthorID) {
		return ErrAuthorIDRequired
	}
	if !validator.IsValidObjectID(r.AuthorID.String()) {
		return InvalidAuthorID(r.AuthorID.String())
	}
	return nil
}

// ValidateCategory runs after the author lookup
func (r CreateBlogRequest) ValidateCategory() error {
	if !validator.IsPresent(r.Category) {
		return ErrCategoryRequired
	}
	return nil
}

// Published is the requested flag, false when absent
func (r CreateBlogRequest) Published() bool {
	return r.IsPublished != nil && *r.IsPublished
}

// TagList returns tags when they were sent as an array of strings
func (r CreateBlogRequest) TagList() []string {
	return stringArray(r.Tags)
}

// SubcategoryList returns subcategory when sent as an array of strings
func (r CreateBlogRequest) SubcategoryList() []string {
	return stringArray(r.Subcategory)
}

// UpdateBlogRequest - PUT /blogs/:blogId. Every field but isPublished is
// mandatory.
type UpdateBlogRequest struct {
	Title       *request.Text   `json:"title"`
	Body        *request.Text   `json:"body"`
	Tags        json.RawMessage `json:"tags"`
	Subcategory json.RawMessage `json:"subcategory"`
	IsPublished *bool           `json:"isPublished"`
}

// Validate rejects partial updates wholesale
func (r UpdateBlogRequest) Validate() error {
	if !validator.IsPresent(r.Title) || !validator.IsPresent(r.Body) {
		return ErrMandatoryBody
	}
	if _, ok := appendList(r.Tags); !ok {
		return ErrMandatoryBody
	}
	if _, ok := appendList(r.Subcategory); !ok {
		return ErrMandatoryBody
	}
	return nil
}

// TagList returns the tags to append; a single string counts as one tag
func (r UpdateBlogRequest) TagList() []string {
	tags, _ := appendList(r.Tags)
	return tags
}

// SubcategoryList returns the subcategories to append
func (r UpdateBlogRequest) SubcategoryList() []string {
	subs, _ := appendList(r.Subcategory)
	return subs
}

// ListQuery - GET /filterblogs
type ListQuery struct {
	AuthorID    string `form:"authorId"`
	Category    string `form:"category"`
	Tags        string `form:"tags"`
	Subcategory string `form:"subcategory"`
}

// Filter builds the listing filter; blank or invalid values are skipped
func (q ListQuery) Filter() *ListFilter {
	return NewListFilter().
		WithAuthorID(q.AuthorID).
		WithCategory(q.Category).
		WithTags(q.Tags).
		WithSubcategory(q.Subcategory)
}

// DeleteQuery - DELETE /blogs?blogId=...
type DeleteQuery struct {
	BlogID      string `form:"blogId"`
	Category    string `form:"category"`
	AuthorID    string `form:"authorId"`
	Tags        string `form:"tags"`
	Subcategory string `form:"subcategory"`
	IsPublished string `form:"isPublished"`
}

// HasCriteria reports whether at least one matching field was given.
// isPublished alone only refines and does not count.
func (q DeleteQuery) HasCriteria() bool {
	for _, v := range []string{q.Category, q.AuthorID, q.Tags, q.Subcategory} {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

func stringArray(raw json.RawMessage) []string {
	if len(raw) == 0 || raw[0] != '[' {
		return nil
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

// appendList accepts an array of strings or a single non-blank string
func appendList(raw json.RawMessage) ([]string, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	if items := stringArray(raw); items != nil {
		return items, true
	}
	var single string
	if err := json.Unmarshal(raw, &single); err != nil || !validator.IsPresent(single) {
		return nil, false
	}
	return []string{single}, true
}

// Filter builds the owner-scoped delete filter
func (q DeleteQuery) Filter(owner primitive.ObjectID) (*DeleteFilter, error) {
	published, err := q.Published()
	if err != nil {
		return nil, err
	}
	return NewDeleteFilter(owner).
		WithCategory(q.Category).
		WithAuthorID(q.AuthorID).
		WithTags(q.Tags).
		WithSubcategory(q.Subcategory).
		WithPublished(published), nil
}

// Published parses the isPublished refinement; nil when absent
func (q DeleteQuery) Published() (*bool, error) {
	raw := strings.TrimSpace(q.IsPublished)
	if raw == "" {
		return nil, nil
	}
	published, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, ErrPublishedInvalid
	}
	return &published, nil
}
