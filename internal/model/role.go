// File: internal/model/role.go
package model

// Role 使用者角色
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleFaculty Role = "faculty"
	RoleStudent Role = "student"
)

// ParseRole 將字串轉為 Role，未知角色回傳 false
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleFaculty:
		return RoleFaculty, true
	case RoleStudent:
		return RoleStudent, true
	}
	return "", false
}

func (r Role) String() string { return string(r) }
