package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"feedback-admin/internal/cache"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newLoginRequest(ip string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = ip + ":4321"
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginRateLimit(t *testing.T) {
	counts := map[string]int64{}
	expires := map[string]time.Duration{}
	c := &cache.FakeCache{
		IncrFn: func(_ context.Context, key string) *redis.IntCmd {
			counts[key]++
			return redis.NewIntResult(counts[key], nil)
		},
		ExpireFn: func(_ context.Context, key string, ttl time.Duration) *redis.BoolCmd {
			expires[key] = ttl
			return redis.NewBoolResult(true, nil)
		},
	}
	mw := LoginRateLimit(c, 2, 15*time.Minute)
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	for i := 0; i < 2; i++ {
		ctx, rec := newLoginRequest("10.0.0.1")
		require.NoError(t, mw(next)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	require.Equal(t, 15*time.Minute, expires["login:ratelimit:10.0.0.1"])

	ctx, rec := newLoginRequest("10.0.0.1")
	require.NoError(t, mw(next)(ctx))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Contains(t, rec.Body.String(), "Too many login attempts")

	// 其他 IP 不受影響
	ctx, rec = newLoginRequest("10.0.0.2")
	require.NoError(t, mw(next)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, expires, 2)
}

func TestLoginRateLimitFailsOpen(t *testing.T) {
	c := &cache.FakeCache{
		IncrFn: func(context.Context, string) *redis.IntCmd {
			return redis.NewIntResult(0, errors.New("redis down"))
		},
	}
	ctx, rec := newLoginRequest("10.0.0.3")
	called := false
	err := LoginRateLimit(c, 1, time.Minute)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(ctx)
	require.NoError(t, err)
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// Expire 失敗仍繼續處理
	c = &cache.FakeCache{
		IncrFn: func(context.Context, string) *redis.IntCmd { return redis.NewIntResult(1, nil) },
		ExpireFn: func(context.Context, string, time.Duration) *redis.BoolCmd {
			return redis.NewBoolResult(false, errors.New("expire"))
		},
	}
	ctx, rec = newLoginRequest("10.0.0.4")
	require.NoError(t, LoginRateLimit(c, 1, time.Minute)(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
}
