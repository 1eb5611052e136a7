package cache

import (
	"context"
	"time"

	"elearning-storefront/internal/pkg/config"
	"elearning-storefront/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects and pings. It returns nil when the cache is disabled.
func NewRedisClient(ctx context.Context, cfg config.CacheConfig) (*redis.Client, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errs.Wrap(err, "failed to ping redis")
	}
	return rdb, nil
}
