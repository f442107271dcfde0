// File: internal/handler/users/user.go
package users

import (
	"net/http"

	"feedback-admin/internal/api"
	"feedback-admin/internal/database"
	"feedback-admin/internal/model"
	"feedback-admin/internal/service"
	"feedback-admin/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword = service.HashPassword
	listUsers    = store.ListUsers
	createUser   = store.CreateUser
	updateUser   = store.UpdateUser
	deleteUser   = store.DeleteUser
)

func toResponse(u model.User) api.UserResponse {
	return api.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func serverError(c echo.Context, op string, err error) error {
	c.Logger().Errorf("%s: %v", op, err)
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Server error"})
}

// ListUsersHandler 列出所有使用者（不含密碼）
// @Summary     List users
// @Description 依建立時間列出所有使用者
// @Tags        users
// @Produce     json
// @Success     200 {array}  api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    CookieAuth
// @Router      /admin/users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return serverError(c, "list users", err)
		}
		resp := make([]api.UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, toResponse(u))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
