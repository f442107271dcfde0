package users

import (
	"errors"
	"net/http"
	"strings"

	"feedback-admin/internal/api"
	"feedback-admin/internal/database"
	"feedback-admin/internal/model"
	"feedback-admin/internal/store"

	"github.com/labstack/echo/v4"
)

// CreateUserHandler 建立使用者，Email 一律轉小寫
// @Summary     Create a new user
// @Description 建立使用者帳號，密碼以 bcrypt 儲存
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateUserRequest true "使用者資料"
// @Success     201  {object} api.MessageResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    CookieAuth
// @Router      /admin/users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		role, ok := model.ParseRole(req.Role)
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid role"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return serverError(c, "create user: hash password", err)
		}

		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}

		_, err = createUser(c.Request().Context(), db, &model.User{
			Username:     strings.TrimSpace(req.Username),
			Email:        strings.ToLower(strings.TrimSpace(req.Email)),
			PasswordHash: hash,
			Role:         role,
			IsActive:     isActive,
		})
		if errors.Is(err, store.ErrDuplicate) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Username or email already exists"})
		}
		if err != nil {
			return serverError(c, "create user", err)
		}
		return c.JSON(http.StatusCreated, api.MessageResponse{Message: "User created successfully"})
	}
}
