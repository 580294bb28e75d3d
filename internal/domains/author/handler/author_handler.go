package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogging-backend/internal/domains/author"
	"blogging-backend/internal/shared/apperror"
	"blogging-backend/internal/shared/middleware"
	"blogging-backend/internal/shared/request"
	"blogging-backend/internal/shared/response"
	"blogging-backend/pkg/logger"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// REGISTER: POST /authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Register(c *gin.Context) {
	var req author.RegisterRequest
	if err := request.BindObject(c, &req, author.ErrEmptyBody); err != nil {
		h.handleError(c, err)
		return
	}

	created, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Author created successfully", created)
}

// ════════════════════════════════════════════════════════════════
// LOGIN: POST /login
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Login(c *gin.Context) {
	var req author.LoginRequest
	if err := request.BindObject(c, &req, author.ErrEmptyLoginBody); err != nil {
		h.handleError(c, err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header(middleware.APIKeyHeader, resp.Token)
	response.Success(c, http.StatusOK, "Author login successfull", resp)
}

// handleError maps service errors to HTTP responses
func (h *AuthorHandler) handleError(c *gin.Context, err error) {
	kind := apperror.KindOf(err)
	if kind == apperror.KindUnexpected {
		logger.ErrorWithFields("author request failed", err, map[string]interface{}{
			"path": c.FullPath(),
		})
	}
	response.Error(c, apperror.HTTPStatus(kind), apperror.MessageOf(err))
}
