package course

import "github.com/gin-gonic/gin"

func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/courses", h.List)
}

func RegisterAdminRoutes(r *gin.RouterGroup, h *Handler) {
	courses := r.Group("/courses")
	{
		courses.POST("", h.Create)
		courses.PUT("/:id", h.Update)
		courses.DELETE("/:id", h.Delete)
	}
}
