package publication

import "github.com/gin-gonic/gin"

func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/publications", h.List)
}

func RegisterAdminRoutes(r *gin.RouterGroup, h *Handler) {
	pubs := r.Group("/publications")
	{
		pubs.POST("", h.Create)
		pubs.PUT("/:id", h.Update)
		pubs.DELETE("/:id", h.Delete)
	}
}
