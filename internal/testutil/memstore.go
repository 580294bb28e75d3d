package testutil

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogging-backend/internal/domains/author"
	"blogging-backend/internal/domains/blog"
)

// AuthorStore is an in-memory author.Repository
type AuthorStore struct {
	mu      sync.RWMutex
	authors []author.Author
}

var _ author.Repository = (*AuthorStore)(nil)

func NewAuthorStore() *AuthorStore {
	return &AuthorStore{}
}

func (s *AuthorStore) Create(_ context.Context, a *author.Author) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.authors {
		if existing.Email == a.Email {
			return author.ErrDuplicateEmail
		}
	}

	now := time.Now().UTC()
	a.ID = primitive.NewObjectID()
	a.CreatedAt, a.UpdatedAt = now, now
	s.authors = append(s.authors, *a)
	return nil
}

func (s *AuthorStore) FindByEmail(_ context.Context, email string) (*author.Author, error) {
	return s.find(func(a author.Author) bool { return a.Email == email })
}

func (s *AuthorStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := s.FindByEmail(ctx, email)
	return err == nil, nil
}

func (s *AuthorStore) ExistsByID(_ context.Context, id primitive.ObjectID) (bool, error) {
	_, err := s.find(func(a author.Author) bool { return a.ID == id })
	return err == nil, nil
}

func (s *AuthorStore) find(match func(author.Author) bool) (*author.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.authors {
		if match(a) {
			found := a
			return &found, nil
		}
	}
	return nil, author.ErrAuthorNotFound
}

// BlogStore is an in-memory blog.Repository evaluating filters in Go
type BlogStore struct {
	mu    sync.RWMutex
	blogs []*blog.Blog
}

var _ blog.Repository = (*BlogStore)(nil)

func NewBlogStore() *BlogStore {
	return &BlogStore{}
}

func (s *BlogStore) Create(_ context.Context, b *blog.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	b.ID = primitive.NewObjectID()
	b.CreatedAt, b.UpdatedAt = now, now
	if b.Tags == nil {
		b.Tags = []string{}
	}
	if b.Subcategory == nil {
		b.Subcategory = []string{}
	}

	stored := clone(b)
	s.blogs = append(s.blogs, stored)
	return nil
}

func (s *BlogStore) FindByID(_ context.Context, id primitive.ObjectID) (*blog.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if b := s.byID(id); b != nil {
		return clone(b), nil
	}
	return nil, blog.ErrBlogNotFound
}

func (s *BlogStore) List(_ context.Context, f *blog.ListFilter) ([]blog.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]blog.Blog, 0)
	for _, b := range s.blogs {
		if b.IsDeleted || b.DeletedAt != nil || !b.IsPublished {
			continue
		}
		if f.AuthorID != nil && b.AuthorID != *f.AuthorID {
			continue
		}
		if f.Category != "" && b.Category != f.Category {
			continue
		}
		if !containsAll(b.Tags, f.Tags) || !containsAll(b.Subcategory, f.Subcategory) {
			continue
		}
		out = append(out, *clone(b))
	}
	return out, nil
}

func (s *BlogStore) FindOne(_ context.Context, f *blog.DeleteFilter) (*blog.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.blogs {
		if b.AuthorID != f.Owner {
			continue
		}
		if f.Category != "" && b.Category != f.Category {
			continue
		}
		if f.IsPublished != nil && b.IsPublished != *f.IsPublished {
			continue
		}
		if !containsAll(b.Tags, f.Tags) || !containsAll(b.Subcategory, f.Subcategory) {
			continue
		}
		return clone(b), nil
	}
	return nil, blog.ErrBlogNotFound
}

func (s *BlogStore) Update(_ context.Context, id primitive.ObjectID, c blog.Changes) (*blog.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.byID(id)
	if b == nil {
		return nil, blog.ErrBlogNotFound
	}
	b.Title = c.Title
	b.Body = c.Body
	b.Tags = append(b.Tags, c.Tags...)
	b.Subcategory = append(b.Subcategory, c.Subcategory...)
	b.IsPublished = c.IsPublished
	b.PublishedAt = c.PublishedAt
	b.UpdatedAt = time.Now().UTC()
	return clone(b), nil
}

func (s *BlogStore) SoftDelete(_ context.Context, id primitive.ObjectID, at time.Time) (*blog.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.byID(id)
	if b == nil || b.IsDeleted {
		return nil, blog.ErrBlogNotFound
	}
	at = at.UTC()
	b.IsDeleted = true
	b.DeletedAt = &at
	b.UpdatedAt = at
	return clone(b), nil
}

func (s *BlogStore) byID(id primitive.ObjectID) *blog.Blog {
	for _, b := range s.blogs {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func clone(b *blog.Blog) *blog.Blog {
	c := *b
	c.Tags = append([]string{}, b.Tags...)
	c.Subcategory = append([]string{}, b.Subcategory...)
	return &c
}

func containsAll(have, want []string) bool {
	set := make(map[string]struct{}, len(have))
	for _, h := range have {
		set[h] = struct{}{}
	}
	for _, w := range want {
		if _, ok := set[w]; !ok {
			return false
		}
	}
	return true
}
