package ratelimit

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taracare/askgate/internal/domain"
)

// RedisStore is a RateStore backed by Redis so multiple replicas share one
// window per client. The window is anchored at the first hit via key expiry.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore connects using a Redis URL (redis://...).
func NewRedisStore(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("op=ratelimit.NewRedisStore: %w", err)
	}
	return &RedisStore{rdb: redis.NewClient(opts)}, nil
}

// NewRedisStoreFromClient wraps an existing client; used by tests.
func NewRedisStoreFromClient(rdb *redis.Client) *RedisStore { return &RedisStore{rdb: rdb} }

// Increment bumps the fixed-window counter for key. The first hit arms the
// window's expiry; a missing TTL (e.g. after a failover) is re-armed so a key
// can never count forever.
func (s *RedisStore) Increment(ctx domain.Context, key string, _ time.Time, window time.Duration) (int, error) {
	k := "ratelimit:" + key
	n, err := s.rdb.Incr(ctx, k).Result()
	if err != nil {
		return 0, fmt.Errorf("op=ratelimit.Increment: %w", err)
	}
	if n == 1 {
		if err := s.rdb.PExpire(ctx, k, window).Err(); err != nil {
			return 0, fmt.Errorf("op=ratelimit.Increment: %w", err)
		}
	} else if ttl, err := s.rdb.PTTL(ctx, k).Result(); err == nil && ttl < 0 {
		_ = s.rdb.PExpire(ctx, k, window).Err()
	}
	return int(n), nil
}

// Ping reports store connectivity; wired into the readiness probe.
func (s *RedisStore) Ping(ctx domain.Context) error {
	return s.rdb.Ping(ctx).Err()
}
