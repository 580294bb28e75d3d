package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogging-backend/internal/domains/blog"
	"blogging-backend/internal/shared/middleware"
)

const subject = "64b7f0c2e4b0a1a2b3c4d5e6"

type mockService struct{ mock.Mock }

func (m *mockService) Create(ctx context.Context, sub string, req blog.CreateBlogRequest) (*blog.Blog, error) {
	args := m.Called(ctx, sub, req)
	b, _ := args.Get(0).(*blog.Blog)
	return b, args.Error(1)
}

func (m *mockService) List(ctx context.Context, q blog.ListQuery) ([]blog.Blog, error) {
	args := m.Called(ctx, q)
	blogs, _ := args.Get(0).([]blog.Blog)
	return blogs, args.Error(1)
}

func (m *mockService) Update(ctx context.Context, sub, id string, req blog.UpdateBlogRequest) (*blog.Blog, error) {
	args := m.Called(ctx, sub, id, req)
	b, _ := args.Get(0).(*blog.Blog)
	return b, args.Error(1)
}

func (m *mockService) DeleteByID(ctx context.Context, sub, id string) (*blog.Blog, error) {
	args := m.Called(ctx, sub, id)
	b, _ := args.Get(0).(*blog.Blog)
	return b, args.Error(1)
}

func (m *mockService) DeleteByFilter(ctx context.Context, sub string, q blog.DeleteQuery) (*blog.Blog, error) {
	args := m.Called(ctx, sub, q)
	b, _ := args.Get(0).(*blog.Blog)
	return b, args.Error(1)
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// setup stands in for AuthMiddleware with a fixed subject
func setup(svc blog.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.AuthorIDKey, subject)
		c.Next()
	})

	h := NewBlogHandler(svc)
	r.POST("/blogs", h.Create)
	r.GET("/filterblogs", h.List)
	r.PUT("/blogs/:blogId", h.Update)
	r.DELETE("/blogs/:blogId", h.DeleteByID)
	r.DELETE("/blogs", h.DeleteByFilter)
	return r
}

func do(r http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestCreate(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		w, env := do(setup(&mockService{}), http.MethodPost, "/blogs", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request parameters. Please provide blog details", env.Message)
	})

	t.Run("passes the subject", func(t *testing.T) {
		svc := &mockService{}
		svc.On("Create", mock.Anything, subject, mock.MatchedBy(func(req blog.CreateBlogRequest) bool {
			return req.Title != nil && *req.Title == "Go"
		})).Return(&blog.Blog{ID: primitive.NewObjectID(), Title: "Go"}, nil)

		w, env := do(setup(svc), http.MethodPost, "/blogs", `{"title":"Go"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Status)
		svc.AssertExpectations(t)
	})

	t.Run("non-string title reaches validation", func(t *testing.T) {
		svc := &mockService{}
		svc.On("Create", mock.Anything, subject, mock.MatchedBy(func(req blog.CreateBlogRequest) bool {
			return req.Title != nil && *req.Title == "123"
		})).Return(nil, blog.ErrBodyRequired)

		w, env := do(setup(svc), http.MethodPost, "/blogs", `{"title":123}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Blog body is required", env.Message)
		svc.AssertExpectations(t)
	})

	t.Run("unknown author", func(t *testing.T) {
		svc := &mockService{}
		svc.On("Create", mock.Anything, subject, mock.Anything).Return(nil, blog.ErrAuthorNotExist)

		w, env := do(setup(svc), http.MethodPost, "/blogs", `{"title":"Go"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Author does not exist", env.Message)
	})
}

func TestList(t *testing.T) {
	t.Run("binds query", func(t *testing.T) {
		svc := &mockService{}
		svc.On("List", mock.Anything, blog.ListQuery{Category: "tech", Tags: "go,web"}).
			Return([]blog.Blog{{Title: "Go"}}, nil)

		w, env := do(setup(svc), http.MethodGet, "/filterblogs?category=tech&tags=go,web", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Blogs list", env.Message)
	})

	t.Run("nothing found", func(t *testing.T) {
		svc := &mockService{}
		svc.On("List", mock.Anything, mock.Anything).Return(nil, blog.ErrNoBlogsFound)

		w, env := do(setup(svc), http.MethodGet, "/filterblogs", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No blogs found", env.Message)
	})
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"unknown blog answers 400", blog.ErrNoSuchBlog, http.StatusBadRequest},
		{"not owner", blog.ErrNotOwner, http.StatusUnauthorized},
		{"missing fields", blog.ErrMandatoryBody, http.StatusNotFound},
		{"store fault", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Update", mock.Anything, subject, "abc", mock.Anything).Return(nil, tt.err)

			w, _ := do(setup(svc), http.MethodPut, "/blogs/abc", "")

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}

	t.Run("success", func(t *testing.T) {
		svc := &mockService{}
		svc.On("Update", mock.Anything, subject, "abc", mock.MatchedBy(func(req blog.UpdateBlogRequest) bool {
			return req.IsPublished != nil && *req.IsPublished
		})).Return(&blog.Blog{Title: "New"}, nil)

		w, env := do(setup(svc), http.MethodPut, "/blogs/abc", `{"title":"New","isPublished":true}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Successfully updated blog details", env.Message)
	})
}

func TestDeleteByID(t *testing.T) {
	t.Run("already deleted", func(t *testing.T) {
		svc := &mockService{}
		svc.On("DeleteByID", mock.Anything, subject, "abc").Return(nil, blog.ErrAlreadyDeleted)

		w, env := do(setup(svc), http.MethodDelete, "/blogs/abc", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Blog already deleted", env.Message)
	})

	t.Run("deleted", func(t *testing.T) {
		svc := &mockService{}
		svc.On("DeleteByID", mock.Anything, subject, "abc").Return(&blog.Blog{IsDeleted: true}, nil)

		w, env := do(setup(svc), http.MethodDelete, "/blogs/abc", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, string(env.Data), `"isDeleted":true`)
	})
}

func TestDeleteByFilter(t *testing.T) {
	t.Run("binds query", func(t *testing.T) {
		svc := &mockService{}
		svc.On("DeleteByFilter", mock.Anything, subject, blog.DeleteQuery{
			BlogID:      "abc",
			Category:    "tech",
			IsPublished: "true",
		}).Return(&blog.Blog{IsDeleted: true}, nil)

		w, env := do(setup(svc), http.MethodDelete, "/blogs?blogId=abc&category=tech&isPublished=true", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Deleted successfully", env.Message)
	})

	t.Run("bad isPublished", func(t *testing.T) {
		svc := &mockService{}
		svc.On("DeleteByFilter", mock.Anything, subject, mock.Anything).Return(nil, blog.ErrPublishedInvalid)

		w, env := do(setup(svc), http.MethodDelete, "/blogs?blogId=abc&category=tech&isPublished=maybe", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "isPublished must be true or false", env.Message)
	})

	t.Run("matched blog already deleted", func(t *testing.T) {
		svc := &mockService{}
		svc.On("DeleteByFilter", mock.Anything, subject, mock.Anything).Return(nil, blog.ErrMatchedBlogDeleted)

		w, env := do(setup(svc), http.MethodDelete, "/blogs?blogId=abc&category=tech", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Blog has been already deleted", env.Message)
	})
}
