// File: internal/model/topic.go
package model

import "time"

type Topic struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Category    Category  `db:"category" json:"category"`
	Votes       int       `db:"votes" json:"votes"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// TopicUpdate 部分更新；nil 欄位保持原值
type TopicUpdate struct {
	Title       *string
	Description *string
	Category    *Category
	Votes       *int
}

func (u TopicUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Category == nil && u.Votes == nil
}
