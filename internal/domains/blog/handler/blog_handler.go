package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogging-backend/internal/domains/blog"
	"blogging-backend/internal/shared/apperror"
	"blogging-backend/internal/shared/middleware"
	"blogging-backend/internal/shared/request"
	"blogging-backend/internal/shared/response"
	"blogging-backend/pkg/logger"
)

type BlogHandler struct {
	service blog.Service
}

func NewBlogHandler(svc blog.Service) *BlogHandler {
	return &BlogHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /blogs
// ════════════════════════════════════════════════════════════════

func (h *BlogHandler) Create(c *gin.Context) {
	var req blog.CreateBlogRequest
	if err := request.BindObject(c, &req, blog.ErrEmptyBody); err != nil {
		h.handleError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), middleware.GetAuthorID(c), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "New blog created successfully", created)
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /filterblogs?authorId=&category=&tags=a,b&subcategory=c
// ════════════════════════════════════════════════════════════════

func (h *BlogHandler) List(c *gin.Context) {
	var query blog.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.handleError(c, blog.ErrInvalidQuery)
		return
	}

	blogs, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Blogs list", blogs)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /blogs/:blogId
// ════════════════════════════════════════════════════════════════

func (h *BlogHandler) Update(c *gin.Context) {
	// Missing fields are reported after the ownership check
	var req blog.UpdateBlogRequest
	if err := request.BindOptional(c, &req); err != nil {
		h.handleError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), middleware.GetAuthorID(c), c.Param("blogId"), req)
	if err != nil {
		if errors.Is(err, blog.ErrNoSuchBlog) {
			response.BadRequest(c, apperror.MessageOf(err))
			return
		}
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Successfully updated blog details", updated)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /blogs/:blogId
// ════════════════════════════════════════════════════════════════

func (h *BlogHandler) DeleteByID(c *gin.Context) {
	deleted, err := h.service.DeleteByID(c.Request.Context(), middleware.GetAuthorID(c), c.Param("blogId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "successfully deleted blog", deleted)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /blogs?blogId=&category=&authorId=&tags=&subcategory=&isPublished=
// ════════════════════════════════════════════════════════════════

func (h *BlogHandler) DeleteByFilter(c *gin.Context) {
	var query blog.DeleteQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.handleError(c, blog.ErrInvalidQuery)
		return
	}

	deleted, err := h.service.DeleteByFilter(c.Request.Context(), middleware.GetAuthorID(c), query)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Deleted successfully", deleted)
}

// handleError maps service errors to HTTP responses
func (h *BlogHandler) handleError(c *gin.Context, err error) {
	kind := apperror.KindOf(err)
	if kind == apperror.KindUnexpected {
		logger.ErrorWithFields("blog request failed", err, map[string]interface{}{
			"path":      c.FullPath(),
			"author_id": middleware.GetAuthorID(c),
		})
	}
	response.Error(c, apperror.HTTPStatus(kind), apperror.MessageOf(err))
}
