package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogging-backend/pkg/jwt"
)

type stubVerifier struct {
	subject string
	err     error
}

func (s stubVerifier) SubjectOf(string) (string, error) {
	return s.subject, s.err
}

type envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

func protected(verifier TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(verifier))
	r.GET("/me", func(c *gin.Context) {
		fromCtx, _ := AuthorIDFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"gin": GetAuthorID(c), "ctx": fromCtx})
	})
	return r
}

func call(r http.Handler, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set(APIKeyHeader, token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		verifier TokenVerifier
		token    string
		wantCode int
		wantMsg  string
	}{
		{
			name:     "missing header",
			verifier: stubVerifier{subject: "a1"},
			wantCode: http.StatusForbidden,
			wantMsg:  "Missing authentication token in request",
		},
		{
			name:     "invalid token",
			verifier: stubVerifier{err: fmt.Errorf("%w: token is malformed", jwt.ErrInvalidToken)},
			token:    "garbage",
			wantCode: http.StatusForbidden,
			wantMsg:  "Invalid authentication token in request",
		},
		{
			name:     "verifier fault",
			verifier: stubVerifier{err: errors.New("key store unavailable")},
			token:    "tok",
			wantCode: http.StatusInternalServerError,
			wantMsg:  "key store unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := call(protected(tt.verifier), tt.token)

			assert.Equal(t, tt.wantCode, w.Code)
			var env envelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			assert.False(t, env.Status)
			assert.Equal(t, tt.wantMsg, env.Message)
		})
	}
}

func TestAuthMiddlewareAttachesSubject(t *testing.T) {
	manager := jwt.NewManager("secret")
	token, err := manager.GenerateToken("64b7f0c2e4b0a1a2b3c4d5e6")
	require.NoError(t, err)

	w := call(protected(manager), token)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"gin":"64b7f0c2e4b0a1a2b3c4d5e6","ctx":"64b7f0c2e4b0a1a2b3c4d5e6"}`, w.Body.String())
}

func TestAuthMiddlewareRejectsForeignSecret(t *testing.T) {
	token, err := jwt.NewManager("other").GenerateToken("64b7f0c2e4b0a1a2b3c4d5e6")
	require.NoError(t, err)

	w := call(protected(jwt.NewManager("secret")), token)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(), Logger())
	r.GET("/panic", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"status":false,"message":"Internal server error"}`, w.Body.String())
}
