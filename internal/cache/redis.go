package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis keeps the document under one key whose TTL is the expiry.
type Redis struct {
	client *redis.Client
	addr   string
	prefix string
	expiry time.Duration
}

func NewRedis(ctx context.Context, url, prefix string, expiry time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Redis{
		client: client,
		addr:   opts.Addr,
		prefix: prefix,
		expiry: expiry,
	}, nil
}

func (c *Redis) Key(parts ...string) string {
	if c.prefix == "" {
		return strings.Join(parts, ":")
	}
	return c.prefix + ":" + strings.Join(parts, ":")
}

func (c *Redis) Load(ctx context.Context) (string, error) {
	doc, err := c.client.Get(ctx, c.Key("document")).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrMiss
		}
		return "", fmt.Errorf("%w: %v", ErrMiss, err)
	}
	if doc == "" {
		return "", fmt.Errorf("%w: empty document", ErrMiss)
	}
	return doc, nil
}

func (c *Redis) Save(ctx context.Context, doc string) error {
	return c.client.Set(ctx, c.Key("document"), doc, c.expiry).Err()
}

func (c *Redis) Info(ctx context.Context) (Info, error) {
	key := c.Key("document")
	size, err := c.client.StrLen(ctx, key).Result()
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrMiss, err)
	}
	ttl, err := c.client.TTL(ctx, key).Result()
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrMiss, err)
	}
	// TTL is negative when the key does not exist
	if ttl < 0 {
		return Info{}, ErrMiss
	}
	return Info{
		Backend:  BackendRedis,
		Location: c.addr + "/" + key,
		StoredAt: time.Now().Add(ttl - c.expiry),
		Size:     size,
	}, nil
}

func (c *Redis) Clear(ctx context.Context) error {
	return c.client.Del(ctx, c.Key("document")).Err()
}

func (c *Redis) Close() error {
	return c.client.Close()
}
