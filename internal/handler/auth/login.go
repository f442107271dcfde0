// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"feedback-admin/internal/api"
	"feedback-admin/internal/database"
	"feedback-admin/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	login            = service.Login
	issueAccessToken = service.IssueAccessToken
)

// wantsJSON 判斷呼叫端要 JSON 還是導頁
func wantsJSON(c echo.Context) bool {
	accept := c.Request().Header.Get(echo.HeaderAccept)
	return strings.Contains(accept, echo.MIMEApplicationJSON) || strings.HasPrefix(c.Request().URL.Path, "/api")
}

// LoginHandler 使用 username 或 email 與密碼登入，JWT 以 HttpOnly cookie 回傳
// @Summary     登入
// @Description 驗證帳號密碼後設定 token cookie；Accept 含 application/json 或路徑為 /api 開頭時回傳 JSON，否則導向 /{role}
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} api.LoginResponse
// @Success     302  "導向 /{role}"
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     429  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB, sess Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "identifier and password are required"})
		}

		// 帳號不存在、停用、密碼錯誤一律回傳相同訊息
		user, err := login(c.Request().Context(), db, req.Identifier, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid credentials"})
			}
			c.Logger().Errorf("login: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Server error"})
		}

		token, err := issueAccessToken(*user, sess.Secret, sess.TTL)
		if err != nil {
			c.Logger().Errorf("login: issue token: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Server error"})
		}
		c.SetCookie(sess.cookie(token, int(sess.TTL.Seconds())))

		if wantsJSON(c) {
			return c.JSON(http.StatusOK, api.LoginResponse{
				OK:       true,
				Role:     string(user.Role),
				Username: user.Username,
			})
		}
		return c.Redirect(http.StatusFound, "/"+string(user.Role))
	}
}

// LogoutHandler 清除 token cookie；伺服器端沒有 session 狀態
// @Summary     登出
// @Description 清除 token cookie
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Router      /logout [post]
func LogoutHandler(sess Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.SetCookie(sess.cookie("", -1))
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Logged out successfully"})
	}
}
