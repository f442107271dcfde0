package users

import (
	"errors"
	"net/http"
	"strings"

	"feedback-admin/internal/api"
	"feedback-admin/internal/database"
	"feedback-admin/internal/handler"
	"feedback-admin/internal/model"
	"feedback-admin/internal/store"

	"github.com/labstack/echo/v4"
)

// UpdateUserHandler 部分更新使用者；提供密碼時重新雜湊
// @Summary     Update a user by ID
// @Description 只更新有提供的欄位
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path     string                 true "使用者 ID (UUID)"
// @Param       body body     api.UpdateUserRequest  true "更新欄位"
// @Success     200  {object} api.MessageResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    CookieAuth
// @Router      /admin/users/{id} [put]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.ParseID(c, "id")
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		upd := model.UserUpdate{IsActive: req.IsActive}
		if req.Username != nil {
			username := strings.TrimSpace(*req.Username)
			upd.Username = &username
		}
		if req.Email != nil {
			email := strings.ToLower(strings.TrimSpace(*req.Email))
			upd.Email = &email
		}
		if req.Role != nil {
			role, ok := model.ParseRole(*req.Role)
			if !ok {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid role"})
			}
			upd.Role = &role
		}
		if req.Password != nil && *req.Password != "" {
			hash, err := hashPassword(*req.Password)
			if err != nil {
				return serverError(c, "update user: hash password", err)
			}
			upd.PasswordHash = &hash
		}

		err := updateUser(c.Request().Context(), db, id, upd)
		switch {
		case errors.Is(err, store.ErrDuplicate):
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Username or email already exists"})
		case errors.Is(err, store.ErrNotFound):
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found"})
		case err != nil:
			return serverError(c, "update user", err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "User updated successfully"})
	}
}
