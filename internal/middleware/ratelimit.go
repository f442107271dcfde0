package middleware

import (
	"net/http"
	"time"

	"feedback-admin/internal/api"
	"feedback-admin/internal/cache"

	"github.com/labstack/echo/v4"
)

const loginRateLimitPrefix = "login:ratelimit:"

// LoginRateLimit 以 Redis 固定視窗計數，依來源 IP 限制登入嘗試次數。
// 快取失敗時放行。
func LoginRateLimit(store cache.Cache, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := loginRateLimitPrefix + c.RealIP()

			count, err := store.Incr(ctx, key).Result()
			if err != nil {
				c.Logger().Errorf("login rate limit: incr %s: %v", key, err)
				return next(c)
			}
			if count == 1 {
				if err := store.Expire(ctx, key, window).Err(); err != nil {
					c.Logger().Errorf("login rate limit: expire %s: %v", key, err)
				}
			}
			if count > int64(limit) {
				return c.JSON(http.StatusTooManyRequests, api.ErrorResponse{Message: "Too many login attempts, please try again later"})
			}
			return next(c)
		}
	}
}
