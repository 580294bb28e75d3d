package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogging-backend/internal/domains/blog"
	"blogging-backend/internal/shared/apperror"
	"blogging-backend/pkg/logger"
)

// blogService implements blog.Service interface
type blogService struct {
	repo    blog.Repository
	authors blog.AuthorLookup
	now     func() time.Time
}

// NewBlogService creates a new blog service instance
func NewBlogService(repo blog.Repository, authors blog.AuthorLookup) blog.Service {
	return &blogService{
		repo:    repo,
		authors: authors,
		now:     time.Now,
	}
}

// ════════════════════════════════════════════════════════════════
// CREATE
// ════════════════════════════════════════════════════════════════

func (s *blogService) Create(ctx context.Context, subject string, req blog.CreateBlogRequest) (*blog.Blog, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	authorID, _ := primitive.ObjectIDFromHex(strings.TrimSpace(req.AuthorID.String()))
	exists, err := s.authors.ExistsByID(ctx, authorID)
	if err != nil {
		return nil, apperror.Unexpected(err)
	}
	if !exists {
		return nil, blog.ErrAuthorNotExist
	}

	if err := req.ValidateCategory(); err != nil {
		return nil, err
	}

	if authorID.Hex() != subject {
		logger.Warn("blog created on behalf of another author", map[string]interface{}{
			"subject":   subject,
			"author_id": authorID.Hex(),
		})
	}

	b := &blog.Blog{
		Title:       req.Title.String(),
		Body:        req.Body.String(),
		AuthorID:    authorID,
		Category:    req.Category.String(),
		Tags:        req.TagList(),
		Subcategory: req.SubcategoryList(),
		IsPublished: req.Published(),
	}
	if b.IsPublished {
		now := s.now().UTC()
		b.PublishedAt = &now
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, apperror.Unexpected(err)
	}
	return b, nil
}

// ════════════════════════════════════════════════════════════════
// LIST
// ════════════════════════════════════════════════════════════════

func (s *blogService) List(ctx context.Context, query blog.ListQuery) ([]blog.Blog, error) {
	blogs, err := s.repo.List(ctx, query.Filter())
	if err != nil {
		return nil, apperror.Unexpected(err)
	}
	if len(blogs) == 0 {
		return nil, blog.ErrNoBlogsFound
	}
	return blogs, nil
}

// ════════════════════════════════════════════════════════════════
// UPDATE
// ════════════════════════════════════════════════════════════════

func (s *blogService) Update(ctx context.Context, subject, blogID string, req blog.UpdateBlogRequest) (*blog.Blog, error) {
	current, err := s.ownedBlog(ctx, subject, blogID)
	if err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	changes := blog.Changes{
		Title:       req.Title.String(),
		Body:        req.Body.String(),
		Tags:        req.TagList(),
		Subcategory: req.SubcategoryList(),
		IsPublished: current.IsPublished,
	}
	if req.IsPublished != nil {
		changes.IsPublished = *req.IsPublished
	}
	if changes.IsPublished {
		now := s.now().UTC()
		changes.PublishedAt = &now
	}

	updated, err := s.repo.Update(ctx, current.ID, changes)
	if err != nil {
		if errors.Is(err, blog.ErrBlogNotFound) {
			return nil, blog.ErrNoSuchBlog
		}
		return nil, apperror.Unexpected(err)
	}
	return updated, nil
}

// ════════════════════════════════════════════════════════════════
// DELETE
// ════════════════════════════════════════════════════════════════

func (s *blogService) DeleteByID(ctx context.Context, subject, blogID string) (*blog.Blog, error) {
	blogID = strings.TrimSpace(blogID)
	if blogID == "" {
		return nil, blog.ErrBlogIDMissing
	}

	id, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return nil, blog.ErrDeleteNotFound
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, blog.ErrBlogNotFound) {
			return nil, blog.ErrDeleteNotFound
		}
		return nil, apperror.Unexpected(err)
	}
	if current.IsDeleted {
		return nil, blog.ErrAlreadyDeleted
	}

	// Ownership is not enforced on this path, only logged
	if !current.OwnedBy(subject) {
		logger.Warn("blog deleted by non-owner", map[string]interface{}{
			"subject": subject,
			"blog_id": blogID,
			"owner":   current.AuthorID.Hex(),
		})
	}

	return s.softDelete(ctx, id, blog.ErrAlreadyDeleted)
}

func (s *blogService) DeleteByFilter(ctx context.Context, subject string, query blog.DeleteQuery) (*blog.Blog, error) {
	anchor, err := s.ownedBlog(ctx, subject, query.BlogID)
	if err != nil {
		return nil, err
	}

	if !query.HasCriteria() {
		return nil, blog.ErrFilterMissing
	}

	filter, err := query.Filter(anchor.AuthorID)
	if err != nil {
		return nil, err
	}
	if !filter.Satisfiable() {
		return nil, blog.ErrNoMatchingBlog
	}

	match, err := s.repo.FindOne(ctx, filter)
	if err != nil {
		if errors.Is(err, blog.ErrBlogNotFound) {
			return nil, blog.ErrNoMatchingBlog
		}
		return nil, apperror.Unexpected(err)
	}
	if match.IsDeleted {
		return nil, blog.ErrMatchedBlogDeleted
	}

	return s.softDelete(ctx, match.ID, blog.ErrMatchedBlogDeleted)
}

// ownedBlog resolves blogID and checks it belongs to subject
func (s *blogService) ownedBlog(ctx context.Context, subject, blogID string) (*blog.Blog, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(blogID))
	if err != nil {
		return nil, blog.ErrNoSuchBlog
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, blog.ErrBlogNotFound) {
			return nil, blog.ErrNoSuchBlog
		}
		return nil, apperror.Unexpected(err)
	}

	if !b.OwnedBy(subject) {
		return nil, blog.ErrNotOwner
	}
	return b, nil
}

// softDelete returns raced when a concurrent request deleted the blog first
func (s *blogService) softDelete(ctx context.Context, id primitive.ObjectID, raced error) (*blog.Blog, error) {
	deleted, err := s.repo.SoftDelete(ctx, id, s.now())
	if err != nil {
		if errors.Is(err, blog.ErrBlogNotFound) {
			return nil, raced
		}
		return nil, apperror.Unexpected(err)
	}
	return deleted, nil
}
