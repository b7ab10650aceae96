package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/redis/go-redis/v9"

	"catppuccin-api/internal/ports"
	"catppuccin-api/internal/types"
)

const documentCachePrefix = "catppuccin-api:document:"

const redisConnectTimeout = 5 * time.Second

// RedisDocumentCache keeps raw source documents in Redis so restarts within
// the TTL skip the upstream download.
type RedisDocumentCache struct {
	client *redis.Client
	prefix string
}

func NewRedisDocumentCache(redisURL string) (*RedisDocumentCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid redis url").
			WithCause(err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("failed to connect to redis").
			WithCause(err)
	}
	return NewRedisDocumentCacheWithClient(client), nil
}

func NewRedisDocumentCacheWithClient(client *redis.Client) *RedisDocumentCache {
	return &RedisDocumentCache{
		client: client,
		prefix: documentCachePrefix,
	}
}

func (c *RedisDocumentCache) key(kind types.SourceKind) string {
	return c.prefix + string(kind)
}

func (c *RedisDocumentCache) Get(ctx context.Context, kind types.SourceKind) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.key(kind)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("failed to read cached document").
			WithCause(err)
	}
	return data, true, nil
}

// Set stores data under kind. A non-positive ttl stores it without expiry.
func (c *RedisDocumentCache) Set(ctx context.Context, kind types.SourceKind, data []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := c.client.Set(ctx, c.key(kind), data, ttl).Err(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("failed to cache document").
			WithCause(err)
	}
	return nil
}

func (c *RedisDocumentCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("document cache unreachable").
			WithCause(err)
	}
	return nil
}

func (c *RedisDocumentCache) Close() error {
	return c.client.Close()
}

var _ ports.DocumentCachePort = (*RedisDocumentCache)(nil)
