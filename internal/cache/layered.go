package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ppiankov/cardiorisk/internal/model"
)

// LayeredCache checks tiers in order and promotes hits to the faster tiers.
type LayeredCache struct {
	tiers []Cache
}

// NewLayeredCache stacks tiers, fastest first.
func NewLayeredCache(tiers ...Cache) *LayeredCache {
	return &LayeredCache{tiers: tiers}
}

// FromConfig builds memory, disk and, when an address is configured, redis
// tiers. It returns nil when caching is disabled.
func FromConfig(ctx context.Context, cfg model.CacheConfig) (*LayeredCache, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	tiers := []Cache{NewMemoryCache(cfg.MemoryTTL, 10*time.Minute)}
	if cfg.DiskDir != "" {
		tiers = append(tiers, NewDiskCache(cfg.DiskDir, cfg.DiskTTL))
	}
	if cfg.RedisAddr != "" {
		rc, err := DialRedis(ctx, cfg.RedisAddr, cfg.DiskTTL)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, rc)
	}
	return NewLayeredCache(tiers...), nil
}

// Get returns the first hit and copies it into every faster tier.
func (c *LayeredCache) Get(ctx context.Context, key string) ([]byte, bool) {
	for i, tier := range c.tiers {
		val, found := tier.Get(ctx, key)
		if !found {
			continue
		}
		for _, faster := range c.tiers[:i] {
			_ = faster.Set(ctx, key, val, 0)
		}
		return val, true
	}
	return nil, false
}

// Set stores a value in every tier.
func (c *LayeredCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	for _, tier := range c.tiers {
		if err := tier.Set(ctx, key, value, ttl); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a value from every tier.
func (c *LayeredCache) Delete(ctx context.Context, key string) error {
	var errs []error
	for _, tier := range c.tiers {
		if err := tier.Delete(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Clear empties every tier.
func (c *LayeredCache) Clear(ctx context.Context) error {
	var errs []error
	for _, tier := range c.tiers {
		if err := tier.Clear(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close releases tiers that hold connections.
func (c *LayeredCache) Close() error {
	var errs []error
	for _, tier := range c.tiers {
		if closer, ok := tier.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close cache tier: %w", err))
			}
		}
	}
	return errors.Join(errs...)
}
