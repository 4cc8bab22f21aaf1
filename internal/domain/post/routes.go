package post

import "github.com/gin-gonic/gin"

func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	posts := r.Group("/posts")
	{
		posts.GET("", h.ListPublic)
		posts.GET("/:slug", h.GetBySlug)
	}
}

func RegisterAdminRoutes(r *gin.RouterGroup, h *Handler) {
	posts := r.Group("/posts")
	{
		posts.GET("", h.ListAdmin)
		posts.POST("", h.Create)
		posts.PUT("/:id", h.Update)
		posts.DELETE("/:id", h.Delete)
	}
}
