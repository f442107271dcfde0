package model

// CategoryCount 每個分類的議題數；Category 為資料庫原始值
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}
