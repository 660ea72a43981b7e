package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	keyPrefix         = "agri-works:route:"
	invalidateTimeout = 5 * time.Second
)

// RedisCache is a RouteCache shared between instances. Each variant is its
// own key with its own expiry, namespaced by the route generation, so an
// invalidation is a single INCR and superseded variants simply age out.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisCache creates a Redis-backed route cache.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "route_cache").Str("store", "redis").Logger(),
	}
}

func generationKey(route string) string {
	return keyPrefix + route + ":gen"
}

func variantKey(route string, generation uint64, variant string) string {
	return keyPrefix + route + ":" + strconv.FormatUint(generation, 10) + ":" + variant
}

func (c *RedisCache) generation(ctx context.Context, route string) (uint64, error) {
	gen, err := c.client.Get(ctx, generationKey(route)).Uint64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read route generation: %w", err)
	}
	return gen, nil
}

// Get returns the cached variant of route at its current generation.
func (c *RedisCache) Get(ctx context.Context, route, variant string) (*Entry, uint64, error) {
	gen, err := c.generation(ctx, route)
	if err != nil {
		return nil, 0, err
	}

	raw, err := c.client.Get(ctx, variantKey(route, gen, variant)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, gen, nil
		}
		return nil, gen, fmt.Errorf("failed to read cached route: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, gen, fmt.Errorf("failed to decode cached route: %w", err)
	}
	return &entry, gen, nil
}

// Set stores a variant of route under generation with the cache TTL. A
// variant of a superseded generation is unreachable and expires unread.
func (c *RedisCache) Set(ctx context.Context, route, variant string, generation uint64, entry Entry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode cached route: %w", err)
	}

	if err := c.client.Set(ctx, variantKey(route, generation, variant), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store cached route: %w", err)
	}
	return nil
}

// Invalidate advances the generation of the given routes in the background.
func (c *RedisCache) Invalidate(routes ...string) {
	if len(routes) == 0 {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), invalidateTimeout)
		defer cancel()

		_, err := c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, route := range routes {
				pipe.Incr(ctx, generationKey(route))
			}
			return nil
		})
		if err != nil {
			c.logger.Error().Err(err).Strs("routes", routes).Msg("failed to invalidate routes")
			return
		}
		c.logger.Debug().Strs("routes", routes).Msg("routes invalidated")
	}()
}
