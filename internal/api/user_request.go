package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=50" example:"alice"`
	Email    string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required,min=6" example:"Secret123!"`
	Role     string `json:"role" form:"role" validate:"required,oneof=admin faculty student" example:"student"`
	IsActive *bool  `json:"isActive" form:"isActive" example:"true"`
}

// UpdateUserRequest 只更新有提供的欄位
// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50" example:"alice"`
	Email    *string `json:"email" validate:"omitempty,email" example:"alice@example.com"`
	Password *string `json:"password" validate:"omitempty,min=6" example:"NewSecret456!"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin faculty student" example:"faculty"`
	IsActive *bool   `json:"isActive" example:"false"`
}
