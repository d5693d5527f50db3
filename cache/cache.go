// Package cache is the key-value port used for session markers and one-time
// captcha codes. Transport failures never propagate to callers: a failed read
// is indistinguishable from a missing key, a failed write reports false. The
// underlying error is only logged.
package cache

import (
	"context"
	"time"

	"bookkeeper/logger"

	"github.com/go-redis/redis/v8"
)

var (
	client *redis.Client
	ctx    = context.Background()
)

// Init connects to redis and verifies the connection.
func Init(addr, password string, db int) error {
	client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return client.Ping(ctx).Err()
}

// Get returns the string value for key, or "" when the key is absent, expired
// or the transport failed.
func Get(key string) string {
	val, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return ""
	}
	if err != nil {
		logger.Warning("cache get err:", err)
		return ""
	}
	return val
}

// Set stores value under key with the given ttl and reports success.
func Set(key, value string, ttl time.Duration) bool {
	if err := client.Set(ctx, key, value, ttl).Err(); err != nil {
		logger.Warning("cache set err:", err)
		return false
	}
	return true
}

// Del removes key and reports success. Deleting a missing key succeeds.
func Del(key string) bool {
	if err := client.Del(ctx, key).Err(); err != nil {
		logger.Warning("cache del err:", err)
		return false
	}
	return true
}

func Close() error {
	if client != nil {
		return client.Close()
	}
	return nil
}
