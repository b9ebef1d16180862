package redis

import (
	"Photoshare/internal/api/config"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient 初始化并返回 Redis 客户端
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection check failed: %w", err)
	}

	log.Info("Redis connection established successfully.")
	return rdb, nil
}
