package rating

import (
	"context"

	"booklibrary/internal/platform/cache"
)

// RedisCache keeps aggregates under "<prefix>:rating:<bookID>" and a fill
// guard counter under "<prefix>:rating:<bookID>:gen".
type RedisCache struct {
	redis *cache.Redis
}

func NewRedisCache(redis *cache.Redis) *RedisCache {
	return &RedisCache{redis: redis}
}

func (c *RedisCache) key(bookID string) string {
	return c.redis.Key("rating", bookID)
}

func (c *RedisCache) genKey(bookID string) string {
	return c.redis.Key("rating", bookID, "gen")
}

func (c *RedisCache) Get(ctx context.Context, bookID string) (Aggregate, bool, error) {
	var agg Aggregate
	ok, err := c.redis.GetJSON(ctx, c.key(bookID), &agg)
	return agg, ok, err
}

func (c *RedisCache) Generation(ctx context.Context, bookID string) (int64, error) {
	return c.redis.Generation(ctx, c.genKey(bookID))
}

func (c *RedisCache) Set(ctx context.Context, bookID string, gen int64, agg Aggregate) error {
	_, err := c.redis.SetJSONIfGeneration(ctx, c.genKey(bookID), gen, c.key(bookID), agg)
	return err
}

func (c *RedisCache) Invalidate(ctx context.Context, bookID string) error {
	return c.redis.Bump(ctx, c.genKey(bookID), c.key(bookID))
}
