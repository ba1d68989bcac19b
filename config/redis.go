package config

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// InitRedis connects the view-counter Redis instance. Returns nil when
// REDIS_ADDR is not configured; analytics then falls back to the visit log.
func InitRedis(ctx context.Context, logger *zap.Logger) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		logger.Info("redis not configured, view counters will use the database")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, view counters will use the database", zap.Error(err))
		return nil
	}

	logger.Info("redis connected", zap.String("addr", addr))
	return rdb
}
