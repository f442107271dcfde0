package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// pingTimeout 啟動時連線檢查的上限
const pingTimeout = 5 * time.Second

// redisClient 為 Cache 加上啟動檢查用的 Ping
type redisClient interface {
	Cache
	Ping(ctx context.Context) *redis.StatusCmd
}

func defaultRedisNewClient(opt *redis.Options) redisClient { return redis.NewClient(opt) }

// redisNewClient 測試可覆寫
var redisNewClient = defaultRedisNewClient

// NewRedisClient 連線並 Ping，失敗時關閉連線。
// 回傳的 client 供登入限流與健康檢查使用。
func NewRedisClient(addr string, password string, db int) (Cache, error) {
	client := redisNewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("NewRedisClient: ping %s: %w", addr, err)
	}
	return client, nil
}
