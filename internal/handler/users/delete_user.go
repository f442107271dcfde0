package users

import (
	"net/http"

	"feedback-admin/internal/api"
	"feedback-admin/internal/database"
	"feedback-admin/internal/handler"

	"github.com/labstack/echo/v4"
)

// DeleteUserHandler 刪除使用者；ID 不存在也回傳成功
// @Summary     Delete a user by ID
// @Tags        users
// @Produce     json
// @Param       id  path     string true "使用者 ID (UUID)"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    CookieAuth
// @Router      /admin/users/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.ParseID(c, "id")
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			return serverError(c, "delete user", err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "User deleted successfully"})
	}
}
