// Package cache wraps a Redis client with JSON values and a key prefix.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	TTL      time.Duration
}

type Redis struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// Connect dials Redis and verifies the connection with PING.
func Connect(ctx context.Context, opts Options) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "ping redis at %s", opts.Addr)
	}
	return New(client, opts.Prefix, opts.TTL), nil
}

func New(client redis.UniversalClient, prefix string, ttl time.Duration) *Redis {
	return &Redis{client: client, prefix: prefix, ttl: ttl}
}

func (c *Redis) Key(parts ...string) string {
	k := c.prefix
	for _, p := range parts {
		if k != "" {
			k += ":"
		}
		k += p
	}
	return k
}

// GetJSON decodes the value at key into dst. A missing key is (false, nil).
func (c *Redis) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "redis get %s", key)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, errors.Wrapf(err, "decode %s", key)
	}
	return true, nil
}

func (c *Redis) SetJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}
	return errors.Wrapf(c.client.Set(ctx, key, raw, c.ttl).Err(), "redis set %s", key)
}

func (c *Redis) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return errors.Wrap(c.client.Del(ctx, keys...).Err(), "redis del")
}

// errStale aborts a guarded write whose generation moved on.
var errStale = errors.New("cache generation changed")

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readGeneration(ctx context.Context, g getter, key string) (int64, error) {
	n, err := g.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, errors.Wrapf(err, "redis get %s", key)
}

// Generation returns the counter stored at key, 0 when it was never bumped.
func (c *Redis) Generation(ctx context.Context, key string) (int64, error) {
	return readGeneration(ctx, c.client, key)
}

// Bump increments the counter at genKey and deletes keys in one MULTI block.
func (c *Redis) Bump(ctx context.Context, genKey string, keys ...string) error {
	_, err := c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, genKey)
		if len(keys) > 0 {
			p.Del(ctx, keys...)
		}
		return nil
	})
	return errors.Wrapf(err, "redis bump %s", genKey)
}

// SetJSONIfGeneration stores v at key only while genKey still holds gen.
// The write runs under WATCH, so a Bump racing with it makes it a no-op.
// It reports whether the value was stored.
func (c *Redis) SetJSONIfGeneration(ctx context.Context, genKey string, gen int64, key string, v any) (bool, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return false, errors.Wrapf(err, "encode %s", key)
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := readGeneration(ctx, tx, genKey)
		if err != nil {
			return err
		}
		if cur != gen {
			return errStale
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key, raw, c.ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errStale), errors.Is(err, redis.TxFailedErr):
		return false, nil
	default:
		return false, errors.Wrapf(err, "redis guarded set %s", key)
	}
}

func (c *Redis) Close() error {
	return c.client.Close()
}
