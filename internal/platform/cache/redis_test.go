package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedis_Key(t *testing.T) {
	c := New(nil, "booklibrary", time.Minute)
	assert.Equal(t, "booklibrary:rating:b-1", c.Key("rating", "b-1"))

	bare := New(nil, "", time.Minute)
	assert.Equal(t, "rating:b-1", bare.Key("rating", "b-1"))
}

func TestRedis_UnreachableServerErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := New(client, "t", time.Minute)
	defer c.Close()

	ctx := context.Background()
	var dst map[string]int
	ok, err := c.GetJSON(ctx, c.Key("x"), &dst)
	assert.False(t, ok)
	assert.Error(t, err)
	assert.Error(t, c.SetJSON(ctx, c.Key("x"), map[string]int{"a": 1}))
	assert.NoError(t, c.Delete(ctx))

	_, err = c.Generation(ctx, c.Key("x", "gen"))
	assert.Error(t, err)
	assert.Error(t, c.Bump(ctx, c.Key("x", "gen"), c.Key("x")))
	stored, err := c.SetJSONIfGeneration(ctx, c.Key("x", "gen"), 0, c.Key("x"), 1)
	assert.False(t, stored)
	assert.Error(t, err)
}
