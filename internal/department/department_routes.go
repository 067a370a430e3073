package department

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authenticated gin.HandlerFunc) {
	departments := r.Group("/department")
	departments.Use(authenticated)
	{
		departments.GET("/", h.GetAll)
		departments.POST("/", h.Create)
		departments.GET("/:id/", h.GetByID)
		departments.PUT("/:id/", h.Update)
		departments.DELETE("/:id/", h.Delete)
	}
}
