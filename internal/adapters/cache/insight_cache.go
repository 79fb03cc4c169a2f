package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// messageTTL outlives the calendar day the key embeds, so entries expire on
// their own without a cleanup pass.
const messageTTL = 48 * time.Hour

// RedisInsightCache stores the rendered insight message per (user, entry
// count, day). Failures degrade to a miss; the caller re-renders.
type RedisInsightCache struct {
	rdb *redis.Client
}

func NewRedisInsightCache(rdb *redis.Client) *RedisInsightCache {
	return &RedisInsightCache{rdb: rdb}
}

func (c *RedisInsightCache) key(userID string, entryCount int, day string) string {
	return fmt.Sprintf("insight_msg:%s:%s:%d", userID, day, entryCount)
}

func (c *RedisInsightCache) GetMessage(ctx context.Context, userID string, entryCount int, day string) (string, bool) {
	val, err := c.rdb.Get(ctx, c.key(userID, entryCount, day)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[CACHE] Insight read error: %v", err)
		}
		return "", false
	}
	return val, true
}

func (c *RedisInsightCache) SetMessage(ctx context.Context, userID string, entryCount int, day string, message string) {
	if err := c.rdb.Set(ctx, c.key(userID, entryCount, day), message, messageTTL).Err(); err != nil {
		log.Printf("[CACHE] Insight write error: %v", err)
	}
}
