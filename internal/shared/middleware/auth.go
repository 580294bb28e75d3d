package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blogging-backend/internal/shared/response"
	"blogging-backend/pkg/jwt"
	"blogging-backend/pkg/logger"
)

// APIKeyHeader carries the login token on protected routes
const APIKeyHeader = "x-api-key"

// AuthorIDKey is the gin context key of the authenticated author id
const AuthorIDKey = "authorID"

type authorIDCtxKey struct{}

// TokenVerifier resolves a token to its subject author id.
// Verification failures must wrap jwt.ErrInvalidToken.
type TokenVerifier interface {
	SubjectOf(token string) (string, error)
}

// AuthMiddleware - verifies the x-api-key token and attaches its subject
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader(APIKeyHeader))
		if token == "" {
			response.Abort(c, http.StatusForbidden, "Missing authentication token in request")
			return
		}

		authorID, err := verifier.SubjectOf(token)
		if err != nil {
			if errors.Is(err, jwt.ErrInvalidToken) {
				response.Abort(c, http.StatusForbidden, "Invalid authentication token in request")
				return
			}
			logger.Error("token verification failed", err)
			response.Abort(c, http.StatusInternalServerError, err.Error())
			return
		}

		c.Set(AuthorIDKey, authorID)
		c.Request = c.Request.WithContext(WithAuthorID(c.Request.Context(), authorID))

		c.Next()
	}
}

// GetAuthorID returns the subject set by AuthMiddleware, "" when absent
func GetAuthorID(c *gin.Context) string {
	return c.GetString(AuthorIDKey)
}

// WithAuthorID stores the authenticated author id in ctx
func WithAuthorID(ctx context.Context, authorID string) context.Context {
	return context.WithValue(ctx, authorIDCtxKey{}, authorID)
}

// AuthorIDFromContext reads the id stored by WithAuthorID
func AuthorIDFromContext(ctx context.Context) (string, bool) {
	authorID, ok := ctx.Value(authorIDCtxKey{}).(string)
	return authorID, ok && authorID != ""
}
