package company

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /company/ behind the session authenticator.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authenticated gin.HandlerFunc) {
	company := r.Group("/company")
	company.Use(authenticated)
	{
		company.GET("/", handler.GetAll)
		company.POST("/", handler.Create)
		company.GET("/:id/", handler.GetByID)
		company.PUT("/:id/", handler.Update)
		company.DELETE("/:id/", handler.Delete)
	}
}
