// Package cache provides the tiered Redis cache in front of the dashboard.
// Keys embed their trust tier, so a private entry can never be served to a
// public read: the two live under different prefixes by construction.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mikeconel/windrush-insights/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Cache TTLs per tier. Public aggregates may be an hour stale; private ones
// at most five minutes; postcode coordinates are effectively static.
const (
	PublicTTL  = time.Hour
	PrivateTTL = 5 * time.Minute
	GeoTTL     = 24 * time.Hour
)

type Cache struct {
	rdb *redis.Client
}

// New creates the Redis-backed cache and verifies connectivity. With no
// Redis address configured the cache runs disabled: every read is a miss.
func New(cfg *config.Config) (*Cache, error) {
	if cfg.Redis.Addr == "" {
		log.Warn().Msg("No Redis address configured, dashboard cache disabled")
		return &Cache{}, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	log.Info().Str("addr", cfg.Redis.Addr).Msg("Redis cache connected")
	return &Cache{rdb: rdb}, nil
}

// PublicKey names an entry in the unauthenticated tier.
func PublicKey(name string) string {
	return "pub:" + name
}

// PrivateKey names an entry scoped to one authenticated admin session.
func PrivateKey(sessionID, name string) string {
	return "priv:" + sessionID + ":" + name
}

// GeoKey names a cached postcode geocode result.
func GeoKey(postcode string) string {
	return "geo:" + postcode
}

// GetJSON loads a cached value into dest. The boolean reports a hit; cache
// failures are logged and degrade to a miss.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c.rdb == nil {
		return false
	}
	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Cache entry unreadable, treating as miss")
		return false
	}
	return true
}

// SetJSON stores a value under key for ttl. Failures are logged, never fatal.
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if c.rdb == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Cache value not serializable")
		return
	}
	if err := c.rdb.Set(ctx, key, payload, ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}

// PurgeSession drops every private entry of one admin session.
func (c *Cache) PurgeSession(ctx context.Context, sessionID string) {
	c.purgePattern(ctx, "priv:"+sessionID+":*")
}

// PurgePublic drops the public tier, used by the explicit refresh action.
func (c *Cache) PurgePublic(ctx context.Context) {
	c.purgePattern(ctx, "pub:*")
}

func (c *Cache) purgePattern(ctx context.Context, pattern string) {
	if c.rdb == nil {
		return
	}
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			log.Warn().Err(err).Str("key", iter.Val()).Msg("Cache purge failed for key")
		}
	}
	if err := iter.Err(); err != nil {
		log.Warn().Err(err).Str("pattern", pattern).Msg("Cache purge scan failed")
	}
}
