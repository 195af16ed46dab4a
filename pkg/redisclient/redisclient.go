package redisclient

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stajdefterim/backend/internal/config"
)

// Connect opens and pings a Redis connection. Callers treat the cache
// as optional, so a failed ping is returned rather than fatal.
func Connect(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
