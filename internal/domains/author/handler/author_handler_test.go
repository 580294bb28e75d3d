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

	"blogging-backend/internal/domains/author"
	"blogging-backend/internal/shared/middleware"
)

type mockService struct{ mock.Mock }

func (m *mockService) Register(ctx context.Context, req author.RegisterRequest) (*author.Author, error) {
	args := m.Called(ctx, req)
	a, _ := args.Get(0).(*author.Author)
	return a, args.Error(1)
}

func (m *mockService) Login(ctx context.Context, req author.LoginRequest) (*author.LoginResponse, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*author.LoginResponse)
	return r, args.Error(1)
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setup(svc author.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthorHandler(svc)
	r.POST("/authors", h.Register)
	r.POST("/login", h.Login)
	return r
}

func do(r http.Handler, path, body string) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestRegister(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		svc := &mockService{}
		w, env := do(setup(svc), "/authors", "{}")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Status)
		assert.Equal(t, "Invalid request parameter, please provide author details", env.Message)
		svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("created without password", func(t *testing.T) {
		svc := &mockService{}
		created := &author.Author{ID: primitive.NewObjectID(), FirstName: "Ada", Email: "ada@example.com", Password: "hash"}
		svc.On("Register", mock.Anything, mock.Anything).Return(created, nil)

		w, env := do(setup(svc), "/authors", `{"fname":"Ada","lname":"L","title":"Miss","email":"ada@example.com","password":"x"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Status)
		assert.Contains(t, string(env.Data), created.ID.Hex())
		assert.NotContains(t, string(env.Data), "password")
	})

	t.Run("validation error", func(t *testing.T) {
		svc := &mockService{}
		svc.On("Register", mock.Anything, mock.Anything).Return(nil, author.ErrLastNameRequired)

		w, env := do(setup(svc), "/authors", `{"fname":"Ada"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Last name is required", env.Message)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := &mockService{}
		svc.On("Register", mock.Anything, mock.Anything).Return(nil, author.EmailTaken("ada@example.com"))

		w, env := do(setup(svc), "/authors", `{"fname":"Ada"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "ada@example.com email address is already registered", env.Message)
	})

	t.Run("unexpected error", func(t *testing.T) {
		svc := &mockService{}
		svc.On("Register", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		w, _ := do(setup(svc), "/authors", `{"fname":"Ada"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		w, env := do(setup(&mockService{}), "/login", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request parameters. Please provide login details", env.Message)
	})

	t.Run("sets token header and body", func(t *testing.T) {
		svc := &mockService{}
		svc.On("Login", mock.Anything, mock.MatchedBy(func(req author.LoginRequest) bool {
			return req.Email != nil && *req.Email == "ada@example.com"
		})).Return(&author.LoginResponse{Token: "tok"}, nil)

		w, env := do(setup(svc), "/login", `{"email":"ada@example.com","password":"x"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "tok", w.Header().Get(middleware.APIKeyHeader))
		assert.JSONEq(t, `{"token":"tok"}`, string(env.Data))
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc := &mockService{}
		svc.On("Login", mock.Anything, mock.Anything).Return(nil, author.ErrInvalidCredentials)

		w, env := do(setup(svc), "/login", `{"email":"ada@example.com","password":"x"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid login credentials", env.Message)
	})
}
