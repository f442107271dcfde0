package middleware

import (
	"net/http"
	"strings"

	"feedback-admin/internal/api"
	"feedback-admin/internal/model"
	"feedback-admin/internal/service"

	"github.com/labstack/echo/v4"
)

const (
	ContextUserKey = "user"
	// SessionCookie 存放登入 JWT 的 cookie 名稱
	SessionCookie = "token"
)

// tokenFromRequest 先讀 cookie，再退回 Authorization: Bearer
func tokenFromRequest(c echo.Context) (string, error) {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authorized, no token"})
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid authorization header format"})
	}
	return parts[1], nil
}

func extractClaims(c echo.Context, secret string) (*service.CustomClaims, error) {
	tokenString, err := tokenFromRequest(c)
	if err != nil {
		return nil, err
	}
	claims, err := service.VerifyAccessToken(tokenString, secret)
	if err != nil {
		c.Logger().Debugf("reject token: %v", err)
		return nil, echo.NewHTTPError(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authorized, token failed"})
	}
	return claims, nil
}

// ClaimsFromContext 取出 RequireAuth 放入的 claims
func ClaimsFromContext(c echo.Context) (*service.CustomClaims, bool) {
	claims, ok := c.Get(ContextUserKey).(*service.CustomClaims)
	return claims, ok
}

func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, secret)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// RequireRole 需登入且角色符合
func RequireRole(secret string, role model.Role) echo.MiddlewareFunc {
	auth := RequireAuth(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth(func(c echo.Context) error {
			claims, ok := ClaimsFromContext(c)
			if !ok || claims.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, api.ErrorResponse{Message: "Access denied"})
			}
			return next(c)
		})
	}
}
