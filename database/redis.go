package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a client for the configured redis instance, or
// nil when REDIS_ADDR is unset or the server is unreachable. Callers
// treat nil as "rate limiting disabled".
func ConnectRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("WARNING: failed to connect to redis at %s: %v; rate limiting disabled", addr, err)
		return nil
	}
	return client
}
