// Package cache provides a redis-backed result cache for analytics
// operations. Only requests that carry their own sales history are cached:
// those are deterministic, so a hit is always identical to a recompute.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/andresuchdata/inventory-analytics/backend-go/internal/config"
	"github.com/andresuchdata/inventory-analytics/backend-go/internal/domain"
)

const (
	keyPrefix       = "analytics:result"
	scanBatchSize   = 100
	defaultCacheTTL = 5 * time.Minute
)

// AnalyticsCache stores serialized operation results keyed by operation name
// and request content.
type AnalyticsCache interface {
	Get(ctx context.Context, op string, req domain.AnalyticsRequest, out any) (bool, error)
	Set(ctx context.Context, op string, req domain.AnalyticsRequest, result any) error
	InvalidateAll(ctx context.Context) error
}

type redisAnalyticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopAnalyticsCache struct{}

// NewAnalyticsCache builds a redis cache from config, or a noop cache when
// caching is disabled.
func NewAnalyticsCache(cfg config.CacheConfig) (AnalyticsCache, error) {
	if !cfg.Enabled {
		return &noopAnalyticsCache{}, nil
	}

	opts, err := buildRedisOptions(cfg)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &redisAnalyticsCache{client: client, ttl: ttl}, nil
}

// NewNoopAnalyticsCache returns a cache that never hits.
func NewNoopAnalyticsCache() AnalyticsCache {
	return &noopAnalyticsCache{}
}

func (c *redisAnalyticsCache) Get(ctx context.Context, op string, req domain.AnalyticsRequest, out any) (bool, error) {
	key, err := buildResultKey(op, req)
	if err != nil {
		return false, err
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get failed: %w", err)
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return false, fmt.Errorf("decode cached %s result: %w", op, err)
	}
	return true, nil
}

func (c *redisAnalyticsCache) Set(ctx context.Context, op string, req domain.AnalyticsRequest, result any) error {
	key, err := buildResultKey(op, req)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode %s result: %w", op, err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisAnalyticsCache) InvalidateAll(ctx context.Context) error {
	var cursor uint64
	pattern := keyPrefix + "*"
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("redis scan failed: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis delete failed: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func (n *noopAnalyticsCache) Get(ctx context.Context, op string, req domain.AnalyticsRequest, out any) (bool, error) {
	return false, nil
}

func (n *noopAnalyticsCache) Set(ctx context.Context, op string, req domain.AnalyticsRequest, result any) error {
	return nil
}

func (n *noopAnalyticsCache) InvalidateAll(ctx context.Context) error {
	return nil
}

// buildResultKey hashes the canonical JSON form of the request so that
// structurally identical requests share an entry.
func buildResultKey(op string, req domain.AnalyticsRequest) (string, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("hash request: %w", err)
	}
	sum := sha1.Sum(raw)
	return fmt.Sprintf("%s:%s:%s", keyPrefix, op, hex.EncodeToString(sum[:])), nil
}

func buildRedisOptions(cfg config.CacheConfig) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return opt, nil
	}

	host := cfg.RedisHost
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.RedisPort
	if port == "" {
		port = "6379"
	}

	return &redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}
