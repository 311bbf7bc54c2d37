package cache

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Forgos-ynov/Vault-API/pkg/cache"
	"github.com/Forgos-ynov/Vault-API/pkg/config"
	"github.com/redis/go-redis/v9"
)

// RedisTagCache implements cache.TagCache on Redis. Each tag owns a set of
// the keys written under it; invalidation deletes the members and the set.
type RedisTagCache struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisTagCache connects a tag cache from the Redis config.
func NewRedisTagCache(cfg *config.Redis, logger *slog.Logger) (*RedisTagCache, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	opt.PoolSize = cfg.PoolSize
	opt.DialTimeout = cfg.DialTimeout
	opt.ReadTimeout = cfg.ReadTimeout
	opt.WriteTimeout = cfg.WriteTimeout
	return &RedisTagCache{
		client: redis.NewClient(opt),
		prefix: cfg.KeyPrefix,
		logger: logger,
	}, nil
}

// NewRedisTagCacheWithClient wraps an existing client, used by tests.
func NewRedisTagCacheWithClient(client *redis.Client, prefix string, logger *slog.Logger) *RedisTagCache {
	return &RedisTagCache{client: client, prefix: prefix, logger: logger}
}

func (r *RedisTagCache) key(key string) string {
	return r.prefix + key
}

func (r *RedisTagCache) tagKey(tag string) string {
	return r.prefix + "tag:" + tag
}

// GetOrPopulate implements cache.TagCache. Value write and tag membership
// are pipelined so a stored value is always reachable from its tag.
func (r *RedisTagCache) GetOrPopulate(
	ctx context.Context,
	key, tag string,
	produce cache.Producer,
) (string, error) {
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if err == nil {
		r.logger.Debug("cache hit", "key", key)
		return val, nil
	}
	if !errors.Is(err, redis.Nil) {
		r.logger.Error("cache get error", "key", key, "error", err)
		return "", err
	}

	r.logger.Debug("cache miss", "key", key, "tag", tag)
	value, err := produce(ctx)
	if err != nil {
		return "", err
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.key(key), value, 0)
	pipe.SAdd(ctx, r.tagKey(tag), r.key(key))
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("cache store error", "key", key, "error", err)
		return "", err
	}
	return value, nil
}

// InvalidateTag implements cache.TagCache.
func (r *RedisTagCache) InvalidateTag(ctx context.Context, tag string) error {
	keys, err := r.client.SMembers(ctx, r.tagKey(tag)).Result()
	if err != nil {
		r.logger.Error("cache tag lookup error", "tag", tag, "error", err)
		return err
	}
	keys = append(keys, r.tagKey(tag))
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Error("cache tag invalidation error", "tag", tag, "error", err)
		return err
	}
	r.logger.Debug("cache tag invalidated", "tag", tag, "keys", len(keys)-1)
	return nil
}
