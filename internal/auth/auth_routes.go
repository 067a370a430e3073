package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public session endpoints. loginLimit and
// registerLimit throttle the two credential-bearing routes.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, loginLimit, registerLimit gin.HandlerFunc) {
	r.POST("/register/", registerLimit, h.Register)
	r.POST("/login/", loginLimit, h.Login)
	r.POST("/logout/", h.Logout)
}
