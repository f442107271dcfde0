// Package config 從環境變數 (及可選的 .env 檔) 載入服務設定。
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort            = "8080"
	DefaultTokenTTL        = 7 * 24 * time.Hour
	DefaultLoginRateLimit  = 10
	DefaultLoginRateWindow = 15 * time.Minute
	productionEnvironment  = "production"
)

type Config struct {
	Port string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret  string
	TokenTTL   time.Duration
	Production bool

	LoginRateLimit  int
	LoginRateWindow time.Duration

	CORSOrigins []string

	// TrustProxy 為 true 時才採用反向代理送來的 X-Forwarded-For
	TrustProxy bool
}

func defaultDotenvLoad() error { return godotenv.Load() }

// dotenvLoad 可於測試中覆寫
var dotenvLoad = defaultDotenvLoad

// Load 先嘗試讀取 .env，再從環境變數組出 Config
func Load() (*Config, error) {
	if err := dotenvLoad(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Port:            getEnv("PORT", DefaultPort),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		Production:      strings.EqualFold(os.Getenv("APP_ENV"), productionEnvironment),
		TokenTTL:        DefaultTokenTTL,
		LoginRateLimit:  DefaultLoginRateLimit,
		LoginRateWindow: DefaultLoginRateWindow,
		CORSOrigins:     splitList(os.Getenv("CORS_ORIGINS")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}

	var err error
	if cfg.RedisDB, err = getEnvAsInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if v := os.Getenv("JWT_EXPIRES_IN"); v != "" {
		if cfg.TokenTTL, err = ParseDuration(v); err != nil {
			return nil, fmt.Errorf("無效的 JWT_EXPIRES_IN: %w", err)
		}
	}
	if v := os.Getenv("TRUST_PROXY"); v != "" {
		if cfg.TrustProxy, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("無效的 TRUST_PROXY: %w", err)
		}
	}
	if cfg.LoginRateLimit, err = getEnvAsInt("LOGIN_RATE_LIMIT", DefaultLoginRateLimit); err != nil {
		return nil, err
	}
	if cfg.LoginRateLimit <= 0 {
		return nil, fmt.Errorf("無效的 LOGIN_RATE_LIMIT: %d", cfg.LoginRateLimit)
	}
	if v := os.Getenv("LOGIN_RATE_WINDOW"); v != "" {
		if cfg.LoginRateWindow, err = ParseDuration(v); err != nil {
			return nil, fmt.Errorf("無效的 LOGIN_RATE_WINDOW: %w", err)
		}
	}

	return cfg, nil
}

// ParseDuration 支援 Go duration 語法，另外接受以天為單位的 "7d"
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("invalid day duration %q", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive: %q", s)
	}
	return d, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("無效的 %s: %v", key, err)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
