// File: internal/model/category.go
package model

// Category 議題分類
type Category string

const (
	CategoryAcademics      Category = "Academics"
	CategoryFaculty        Category = "Faculty"
	CategoryInfrastructure Category = "Infrastructure"
	CategoryHostel         Category = "Hostel"
	CategoryAdministration Category = "Administration"
	CategoryOther          Category = "Other"

	// CategoryAll 是未套用分類篩選時的標籤，不是可儲存的分類
	CategoryAll = "All"
)

// Categories 依固定順序列出所有分類
var Categories = []Category{
	CategoryAcademics,
	CategoryFaculty,
	CategoryInfrastructure,
	CategoryHostel,
	CategoryAdministration,
	CategoryOther,
}

// ParseCategory 將字串轉為 Category，不在列舉內 (含空字串與 "All") 回傳 false
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Label 回傳篩選標籤，空值代表全部
func (c Category) Label() string {
	if c == "" {
		return CategoryAll
	}
	return string(c)
}
