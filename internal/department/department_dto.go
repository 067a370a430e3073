package department

import (
	"time"

	"go-ems/internal/shared/request"
)

type DepartmentRequest struct {
	Name        string `json:"name" binding:"required,max=30"`
	Description string `json:"description" binding:"required,max=200"`
	Company     request.PK `json:"company" binding:"required"`
}

type DepartmentResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Company      uint      `json:"company"`
	CreationTime time.Time `json:"creation_time"`
	LastUpdated  time.Time `json:"last_updated"`
}
