package api

import "time"

// swagger:model api.UserResponse
type UserResponse struct {
	ID        string    `json:"id" example:"0b6f1c1e-7d43-4b47-9a3c-5f1f3c9e2a10"`
	Username  string    `json:"username" example:"alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	Role      string    `json:"role" example:"student"`
	IsActive  bool      `json:"isActive" example:"true"`
	CreatedAt time.Time `json:"createdAt" example:"2025-05-01T15:04:05Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2025-05-01T15:04:05Z"`
}
