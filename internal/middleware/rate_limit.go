package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	rateLimitPeriod = 1 * time.Minute
	rateLimitCount  = 5
)

// RateLimiter throttles a route to rateLimitCount requests per minute
// per client IP, backed by redis INCR/EXPIRE. A nil client or a redis
// failure lets the request through; the limiter is protection, not a
// dependency.
func RateLimiter(client *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		key := "rate_limit:" + c.ClientIP()
		count, err := client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			if err := client.Expire(c.Request.Context(), key, rateLimitPeriod).Err(); err != nil {
				// Without an expiry the key would throttle this IP
				// forever; drop it and fail open.
				client.Del(c.Request.Context(), key)
				c.Next()
				return
			}
		}
		if count > rateLimitCount {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}

		c.Next()
	}
}
