// Package cache stores browse pages in Redis. Entries are keyed by a
// catalog version; bumping the version invalidates every page at once.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dev-modakk/modakk-backend/internal/domain"
	"github.com/dev-modakk/modakk-backend/internal/logger"
	"github.com/dev-modakk/modakk-backend/internal/metrics"
)

const (
	// VersionKey holds the current catalog version.
	VersionKey = "giftboxes:version"
	// BrowseKeyPrefix prefixes every cached browse page.
	BrowseKeyPrefix = "giftboxes:browse:v"

	// DefaultTTL applies when no TTL is configured.
	DefaultTTL = 5 * time.Minute
)

// BrowseCache caches browse pages.
type BrowseCache interface {
	Get(ctx context.Context, q domain.BrowseQuery) (*domain.BrowsePage, bool)
	Set(ctx context.Context, q domain.BrowseQuery, page *domain.BrowsePage)
	Invalidate(ctx context.Context) error
}

// RedisBrowseCache implements BrowseCache on Redis.
type RedisBrowseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisBrowseCache creates a RedisBrowseCache. A non-positive ttl uses DefaultTTL.
func NewRedisBrowseCache(client *redis.Client, ttl time.Duration) *RedisBrowseCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisBrowseCache{client: client, ttl: ttl}
}

// Get returns the cached page for q. Redis failures count as a miss.
func (c *RedisBrowseCache) Get(ctx context.Context, q domain.BrowseQuery) (*domain.BrowsePage, bool) {
	version, err := c.version(ctx)
	if err != nil {
		logger.WarnContext(ctx, "Failed to read cache version", "error", err)
		metrics.CacheRequests.WithLabelValues("miss").Inc()
		return nil, false
	}

	data, err := c.client.Get(ctx, BrowseKey(version, q)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.WarnContext(ctx, "Failed to read browse cache", "error", err)
		}
		metrics.CacheRequests.WithLabelValues("miss").Inc()
		return nil, false
	}

	var page domain.BrowsePage
	if err := json.Unmarshal(data, &page); err != nil {
		logger.WarnContext(ctx, "Failed to unmarshal cached browse page", "error", err)
		metrics.CacheRequests.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.CacheRequests.WithLabelValues("hit").Inc()
	return &page, true
}

// Set stores page under the current version. Failures are logged and dropped.
func (c *RedisBrowseCache) Set(ctx context.Context, q domain.BrowseQuery, page *domain.BrowsePage) {
	version, err := c.version(ctx)
	if err != nil {
		logger.WarnContext(ctx, "Failed to read cache version", "error", err)
		return
	}

	data, err := json.Marshal(page)
	if err != nil {
		logger.WarnContext(ctx, "Failed to marshal browse page", "error", err)
		return
	}

	if err := c.client.Set(ctx, BrowseKey(version, q), data, c.ttl).Err(); err != nil {
		logger.WarnContext(ctx, "Failed to cache browse page", "error", err)
	}
}

// Invalidate bumps the catalog version.
func (c *RedisBrowseCache) Invalidate(ctx context.Context) error {
	version, err := c.client.Incr(ctx, VersionKey).Result()
	if err != nil {
		return fmt.Errorf("invalidate browse cache: %w", err)
	}
	logger.DebugContext(ctx, "Browse cache invalidated", "version", version)
	return nil
}

func (c *RedisBrowseCache) version(ctx context.Context) (int64, error) {
	version, err := c.client.Get(ctx, VersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		// SETNX keeps a concurrent Invalidate from being overwritten.
		if err := c.client.SetNX(ctx, VersionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return c.client.Get(ctx, VersionKey).Int64()
	}
	return version, err
}

// BrowseKey builds the cache key for q at version.
func BrowseKey(version int64, q domain.BrowseQuery) string {
	return fmt.Sprintf("%s%d:p:%d:s:%d:c:%s:o:%s:q:%s",
		BrowseKeyPrefix, version, q.Page, q.PageSize, q.Category, q.Sort, q.Query)
}

// Nop is a BrowseCache that never stores anything.
type Nop struct{}

// Get always misses.
func (Nop) Get(context.Context, domain.BrowseQuery) (*domain.BrowsePage, bool) { return nil, false }

// Set discards page.
func (Nop) Set(context.Context, domain.BrowseQuery, *domain.BrowsePage) {}

// Invalidate does nothing.
func (Nop) Invalidate(context.Context) error { return nil }
