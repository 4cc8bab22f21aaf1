package file

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes exposes the read side of the catalogue.
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	files := r.Group("/files")
	{
		files.GET("", h.List)
		files.GET("/featured", h.Featured)
		files.GET("/category/:category", h.ByCategory)
		files.GET("/:id", h.Get)
		files.POST("/:id/download", h.Download)
	}
}

// RegisterAdminRoutes exposes the mutating side behind authentication.
func RegisterAdminRoutes(r *gin.RouterGroup, h *Handler) {
	files := r.Group("/files")
	{
		files.POST("", h.Create)
		files.PUT("/:id", h.Update)
		files.DELETE("/:id", h.Delete)
		files.DELETE("/:id/complete", h.DeleteComplete)
	}
}
