package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blogging-backend/internal/shared/middleware"
	"blogging-backend/internal/shared/response"
	"blogging-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	router.GET("/health", healthCheckHandler(c))

	setupAuthorRoutes(router, c)
	setupBlogRoutes(router, c)

	return router
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(r *gin.Engine, c *container.Container) {
	r.POST("/authors", c.AuthorHandler.Register)
	r.POST("/login", c.AuthorHandler.Login)
}

// ========================================
// BLOG ROUTES (x-api-key required)
// ========================================
func setupBlogRoutes(r *gin.Engine, c *container.Container) {
	blogs := r.Group("")
	blogs.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		blogs.POST("/blogs", c.BlogHandler.Create)
		blogs.GET("/filterblogs", c.BlogHandler.List)
		blogs.PUT("/blogs/:blogId", c.BlogHandler.Update)
		blogs.DELETE("/blogs/:blogId", c.BlogHandler.DeleteByID)
		blogs.DELETE("/blogs", c.BlogHandler.DeleteByFilter)
	}
}

// ========================================
// HEALTH
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		services, healthy := appCtx.HealthCheck(ctx)
		health := gin.H{
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  services,
		}

		if !healthy {
			c.JSON(http.StatusServiceUnavailable, response.Response{
				Status:  false,
				Message: "degraded",
				Data:    health,
			})
			return
		}
		response.Success(c, http.StatusOK, "ok", health)
	}
}
