package api

// swagger:model api.CreateTopicRequest
type CreateTopicRequest struct {
	Title       string `json:"title" form:"title" validate:"required,max=200" example:"Library hours"`
	Description string `json:"description" form:"description" validate:"max=5000" example:"Keep the library open until midnight during exams"`
	Category    string `json:"category" form:"category" validate:"required,oneof=Academics Faculty Infrastructure Hostel Administration Other" example:"Academics"`
	Votes       int    `json:"votes" form:"votes" validate:"gte=0" example:"0"`
}

// UpdateTopicRequest 只更新有提供的欄位
// swagger:model api.UpdateTopicRequest
type UpdateTopicRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200" example:"Library hours"`
	Description *string `json:"description" validate:"omitempty,max=5000" example:"Extend on weekends too"`
	Category    *string `json:"category" validate:"omitempty,oneof=Academics Faculty Infrastructure Hostel Administration Other" example:"Infrastructure"`
	Votes       *int    `json:"votes" validate:"omitempty,gte=0" example:"12"`
}
