package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/guiatur/guiatur-api/config"
	"github.com/guiatur/guiatur-api/internal/bootstrap"
)

// connectRedisOnly opens a Redis connection for commands that never touch
// Postgres, such as session inspection and cleanup.
func connectRedisOnly(logger *slog.Logger, cfg *config.AppConfig) (redis.UniversalClient, error) {
	if !hasRedisConfig(cfg) {
		return nil, errors.New("redis is not configured; set REDIS_URI or sentinel settings")
	}

	client, err := bootstrap.ConnectRedis(bootstrap.DatabaseConfig{
		RedisConfig: cfg.Redis,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return client, nil
}

func hasRedisConfig(cfg *config.AppConfig) bool {
	if cfg == nil {
		return false
	}
	if cfg.Redis.UseSentinel {
		for _, node := range cfg.Redis.SentinelNodes {
			if strings.TrimSpace(node) != "" {
				return true
			}
		}
		return false
	}
	return strings.TrimSpace(cfg.Redis.URI) != ""
}
