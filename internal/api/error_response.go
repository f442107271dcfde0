package api

// ErrorResponse 全域錯誤響應模型
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message" example:"Server error"`
}

// MessageResponse 一般操作結果
// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"User created successfully"`
}
