package libs

import (
	"classifieds/models"
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const adsListKey = "ads:list"

// AdsCache stores the public ads listing envelope in Redis. A nil client
// turns every method into a no-op miss.
type AdsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAdsCache(client *redis.Client, ttl time.Duration) *AdsCache {
	return &AdsCache{client: client, ttl: ttl}
}

func (c *AdsCache) Get(ctx context.Context) (*models.AdsDto, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	cached, err := c.client.Get(ctx, adsListKey).Result()
	if err != nil {
		if err != redis.Nil {
			slog.WarnContext(ctx, "ads cache read failed", "error", err)
		}
		return nil, false
	}

	var ads models.AdsDto
	if err := json.Unmarshal([]byte(cached), &ads); err != nil {
		slog.WarnContext(ctx, "ads cache entry corrupt", "error", err)
		return nil, false
	}
	return &ads, true
}

func (c *AdsCache) Set(ctx context.Context, ads *models.AdsDto) {
	if c == nil || c.client == nil {
		return
	}
	payload, err := json.Marshal(ads)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, adsListKey, payload, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "ads cache write failed", "error", err)
	}
}

func (c *AdsCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, adsListKey).Err(); err != nil {
		slog.WarnContext(ctx, "ads cache invalidation failed", "error", err)
	}
}
