package cache

import (
	"context"
	"time"

	"biograf/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects to cfg.Addr and pings it. It returns nil when no
// address is configured or the server does not answer; callers then run
// without caching and rate limiting.
func NewRedisClient(cfg utils.RedisConfig, log *zap.Logger) *redis.Client {
	if cfg.Addr == "" {
		log.Info("Redis not configured, cache and rate limit disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, cache and rate limit disabled",
			zap.String("addr", cfg.Addr),
			zap.Error(err),
		)
		_ = client.Close()
		return nil
	}

	log.Info("Redis connected", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))
	return client
}
