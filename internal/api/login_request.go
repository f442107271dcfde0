package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	// 使用者名稱或 Email
	Identifier string `json:"identifier" form:"identifier" validate:"required" example:"alice"`
	Password   string `json:"password" form:"password" validate:"required" example:"Secret123!"`
}

// swagger:model api.LoginResponse
type LoginResponse struct {
	OK       bool   `json:"ok" example:"true"`
	Role     string `json:"role" example:"admin"`
	Username string `json:"username" example:"alice"`
}
