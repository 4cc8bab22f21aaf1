package profile

import "github.com/gin-gonic/gin"

func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/profile", h.Get)
}

func RegisterAdminRoutes(r *gin.RouterGroup, h *Handler) {
	r.PUT("/profile", h.Update)

	education := r.Group("/profile/education")
	{
		education.POST("", h.CreateEducation)
		education.PUT("/:id", h.UpdateEducation)
		education.DELETE("/:id", h.DeleteEducation)
	}

	experience := r.Group("/profile/experience")
	{
		experience.POST("", h.CreateExperience)
		experience.PUT("/:id", h.UpdateExperience)
		experience.DELETE("/:id", h.DeleteExperience)
	}
}
