package achievement

import "github.com/gin-gonic/gin"

func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/achievements", h.List)
}

func RegisterAdminRoutes(r *gin.RouterGroup, h *Handler) {
	items := r.Group("/achievements")
	{
		items.POST("", h.Create)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}
