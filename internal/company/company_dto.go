package company

import "time"

type CompanyRequest struct {
	Name    string `json:"name" binding:"required,max=50"`
	Address string `json:"address" binding:"required,max=50"`
	Email   string `json:"email" binding:"required,email,max=50"`
}

type CompanyResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Email        string    `json:"email"`
	CreationTime time.Time `json:"creation_time"`
	LastUpdated  time.Time `json:"last_updated"`
}
