package cache

import (
	"context"
	"fmt"
	"time"

	"courtsched/core/config"
	"courtsched/core/constants"
	"courtsched/core/logger"

	"github.com/redis/go-redis/v9"
)

// Cache holds short-lived resolved availability per (court, date). A miss is
// never an error: callers fall back to recomputing.
type Cache interface {
	GetAvailability(ctx context.Context, courtID, date string) ([]byte, bool)
	SetAvailability(ctx context.Context, courtID, date string, payload []byte)
	InvalidateDay(ctx context.Context, courtID, date string)
	InvalidateCourt(ctx context.Context, courtID string)
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(cfg config.RedisConfig) Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unavailable, availability caching degraded", "error", err, "addr", cfg.Addr)
	}

	return &redisCache{
		client: client,
		ttl:    constants.AvailabilityCacheTTLSeconds * time.Second,
	}
}

func availabilityKey(courtID, date string) string {
	return fmt.Sprintf("availability:%s:%s", courtID, date)
}

func (c *redisCache) GetAvailability(ctx context.Context, courtID, date string) ([]byte, bool) {
	val, err := c.client.Get(ctx, availabilityKey(courtID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("Cache:GetAvailability:Error", "error", err)
		}
		return nil, false
	}
	return val, true
}

func (c *redisCache) SetAvailability(ctx context.Context, courtID, date string, payload []byte) {
	if err := c.client.Set(ctx, availabilityKey(courtID, date), payload, c.ttl).Err(); err != nil {
		logger.Warn("Cache:SetAvailability:Error", "error", err)
	}
}

func (c *redisCache) InvalidateDay(ctx context.Context, courtID, date string) {
	if err := c.client.Del(ctx, availabilityKey(courtID, date)).Err(); err != nil {
		logger.Warn("Cache:InvalidateDay:Error", "error", err)
	}
}

// InvalidateCourt drops every cached day for a court. Used after migration
// runs and slot configuration changes, which affect all dates at once.
func (c *redisCache) InvalidateCourt(ctx context.Context, courtID string) {
	pattern := fmt.Sprintf("availability:%s:*", courtID)
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Warn("Cache:InvalidateCourt:Del:Error", "error", err, "key", iter.Val())
		}
	}
	if err := iter.Err(); err != nil {
		logger.Warn("Cache:InvalidateCourt:Scan:Error", "error", err)
	}
}
