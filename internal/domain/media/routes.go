package media

import "github.com/gin-gonic/gin"

// RegisterAdminRoutes registers the media manager under the protected group.
func RegisterAdminRoutes(r *gin.RouterGroup, h *Handler) {
	m := r.Group("/media")
	{
		m.GET("", h.List)
		m.POST("/upload", h.Upload)
		m.DELETE("", h.Delete)
		m.GET("/progress", h.Progress)
	}
}
