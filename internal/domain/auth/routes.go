package auth

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers the login endpoint.
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/auth/login", h.Login)
}

// RegisterAdminRoutes registers routes behind the auth middleware.
func RegisterAdminRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/auth/me", h.Me)
}
