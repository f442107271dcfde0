package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// stubClient 模擬 redisClient，只記錄 Ping 與 Close
type stubClient struct {
	FakeCache
	pingErr  error
	deadline bool
	closed   bool
}

func (s *stubClient) Ping(ctx context.Context) *redis.StatusCmd {
	_, s.deadline = ctx.Deadline()
	return redis.NewStatusResult("PONG", s.pingErr)
}

func (s *stubClient) Close() error {
	s.closed = true
	return nil
}

func TestNewRedisClient(t *testing.T) {
	t.Cleanup(func() { redisNewClient = defaultRedisNewClient })

	t.Run("success", func(t *testing.T) {
		var opts *redis.Options
		stub := &stubClient{}
		redisNewClient = func(o *redis.Options) redisClient {
			opts = o
			return stub
		}

		c, err := NewRedisClient("127.0.0.1:6379", "secret", 1)
		require.NoError(t, err)
		require.Same(t, stub, c)
		require.Equal(t, "127.0.0.1:6379", opts.Addr)
		require.Equal(t, "secret", opts.Password)
		require.Equal(t, 1, opts.DB)
		require.True(t, stub.deadline)
		require.False(t, stub.closed)
	})

	t.Run("ping fail closes client", func(t *testing.T) {
		stub := &stubClient{pingErr: errors.New("connection refused")}
		redisNewClient = func(o *redis.Options) redisClient { return stub }

		c, err := NewRedisClient("cache:6379", "", 0)
		require.Error(t, err)
		require.ErrorContains(t, err, "cache:6379")
		require.ErrorIs(t, err, stub.pingErr)
		require.Nil(t, c)
		require.True(t, stub.closed)
	})

	t.Run("default constructor", func(t *testing.T) {
		c := defaultRedisNewClient(&redis.Options{Addr: "127.0.0.1:0", DialTimeout: time.Millisecond})
		require.NotNil(t, c)
		require.NoError(t, c.Close())
	})
}
