package config

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisClient is nil when no REDIS_HOST is configured; callers must
// check before use.
var RedisClient *redis.Client

var ctx = context.Background()

// InitRedis connects the cache client. A missing REDIS_HOST is not an
// error — the app runs without a cache.
func InitRedis(config Config) error {
	if config.RedisHost == "" {
		Logger.Infow("redis not configured, history cache disabled")
		return nil
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     config.GetRedisConnString(),
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})

	if _, err := RedisClient.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("redis connection test failed: %v", err)
	}

	return nil
}
