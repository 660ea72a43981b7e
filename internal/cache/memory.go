package cache

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultMaxVariants bounds the number of variants kept per route.
const DefaultMaxVariants = 1024

type memoryEntry struct {
	entry     Entry
	expiresAt time.Time
}

// MemoryCache is an in-process RouteCache with a fixed TTL.
type MemoryCache struct {
	mu          sync.Mutex
	routes      map[string]map[string]memoryEntry
	generations map[string]uint64
	ttl         time.Duration
	maxVariants int
	now         func() time.Time
	logger      zerolog.Logger
}

// NewMemoryCache creates an in-memory route cache.
func NewMemoryCache(ttl time.Duration, logger zerolog.Logger) *MemoryCache {
	return &MemoryCache{
		routes:      make(map[string]map[string]memoryEntry),
		generations: make(map[string]uint64),
		ttl:         ttl,
		maxVariants: DefaultMaxVariants,
		now:         time.Now,
		logger:      logger.With().Str("component", "route_cache").Str("store", "memory").Logger(),
	}
}

// Get returns the cached variant of route when it has not expired. An
// expired variant is removed.
func (c *MemoryCache) Get(_ context.Context, route, variant string) (*Entry, uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	generation := c.generations[route]

	e, ok := c.routes[route][variant]
	if !ok {
		return nil, generation, nil
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.routes[route], variant)
		return nil, generation, nil
	}

	entry := e.entry
	return &entry, generation, nil
}

// Set stores a variant of route unless the route was invalidated after
// generation was read. A full route first drops its expired variants, then
// the one closest to expiry.
func (c *MemoryCache) Set(_ context.Context, route, variant string, generation uint64, entry Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generations[route] != generation {
		c.logger.Debug().Str("route", route).Str("variant", variant).Msg("discarding response from an invalidated generation")
		return nil
	}

	variants, ok := c.routes[route]
	if !ok {
		variants = make(map[string]memoryEntry)
		c.routes[route] = variants
	}

	now := c.now()
	if _, exists := variants[variant]; !exists && len(variants) >= c.maxVariants {
		c.evict(variants, now)
	}
	variants[variant] = memoryEntry{entry: entry, expiresAt: now.Add(c.ttl)}
	return nil
}

// evict makes room for one more variant.
func (c *MemoryCache) evict(variants map[string]memoryEntry, now time.Time) {
	var (
		oldest    string
		oldestExp time.Time
	)
	for key, e := range variants {
		if !now.Before(e.expiresAt) {
			delete(variants, key)
			continue
		}
		if oldest == "" || e.expiresAt.Before(oldestExp) {
			oldest, oldestExp = key, e.expiresAt
		}
	}
	if len(variants) >= c.maxVariants {
		delete(variants, oldest)
	}
}

// Invalidate discards every variant of the given routes and advances their
// generations.
func (c *MemoryCache) Invalidate(routes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, route := range routes {
		delete(c.routes, route)
		c.generations[route]++
	}
	c.logger.Debug().Strs("routes", routes).Msg("routes invalidated")
}
