package summons

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis creates a Redis-backed roster repository with the given session TTL
func NewRedis(client redis.UniversalClient, ttl time.Duration) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:     client,
		SessionTTL: ttl,
	})
}
