// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"feedback-admin/internal/cache"
	"feedback-admin/internal/config"
	"feedback-admin/internal/database"
	"feedback-admin/internal/handler"
	"feedback-admin/internal/handler/admin"
	"feedback-admin/internal/handler/auth"
	"feedback-admin/internal/handler/topics"
	"feedback-admin/internal/handler/users"
	"feedback-admin/internal/middleware"
	"feedback-admin/internal/model"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, cfg *config.Config) {
	sess := auth.Session{Secret: cfg.JWTSecret, TTL: cfg.TokenTTL, Production: cfg.Production}
	limiter := middleware.LoginRateLimit(rdb, cfg.LoginRateLimit, cfg.LoginRateWindow)
	requireAdmin := middleware.RequireRole(cfg.JWTSecret, model.RoleAdmin)

	// 登入 / 登出，/login 供表單直接提交
	e.POST("/login", auth.LoginHandler(db, sess), limiter)
	e.POST("/logout", auth.LogoutHandler(sess))

	// 舊版後台首頁，回傳與 /api/admin/analytics 相同的 JSON
	e.GET("/admin", admin.AnalyticsHandler(db), requireAdmin)

	api := e.Group("/api")

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db, rdb), middleware.RequireAuth(cfg.JWTSecret))

	api.POST("/auth/login", auth.LoginHandler(db, sess), limiter)
	api.POST("/auth/logout", auth.LogoutHandler(sess))

	// 管理員專屬
	apiAdmin := api.Group("/admin", requireAdmin)
	apiAdmin.GET("/analytics", admin.AnalyticsHandler(db))

	apiUsers := apiAdmin.Group("/users")
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.POST("", users.CreateUserHandler(db))
	apiUsers.PUT("/:id", users.UpdateUserHandler(db))
	apiUsers.DELETE("/:id", users.DeleteUserHandler(db))

	apiTopics := apiAdmin.Group("/topics")
	apiTopics.GET("", topics.ListTopicsHandler(db))
	apiTopics.POST("", topics.CreateTopicHandler(db))
	apiTopics.PUT("/:id", topics.UpdateTopicHandler(db))
	apiTopics.DELETE("/:id", topics.DeleteTopicHandler(db))
}
