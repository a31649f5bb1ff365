package libs

import (
	"classifieds/models"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*AdsCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewAdsCache(client, time.Minute), mr
}

func TestAdsCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)

	if _, ok := cache.Get(ctx); ok {
		t.Fatal("empty cache reported a hit")
	}

	image := "/images/a.png"
	want := &models.AdsDto{Count: 1, Results: []models.AdDto{{Pk: 1, Author: 2, Title: "Bike", Price: 10, Image: &image}}}
	cache.Set(ctx, want)

	got, ok := cache.Get(ctx)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.Count != 1 || got.Results[0].Title != "Bike" || *got.Results[0].Image != image {
		t.Fatalf("got %+v", got)
	}

	if ttl := mr.TTL(adsListKey); ttl != time.Minute {
		t.Errorf("ttl = %v", ttl)
	}

	cache.Invalidate(ctx)
	if _, ok := cache.Get(ctx); ok {
		t.Fatal("hit after invalidate")
	}
}

func TestAdsCacheCorruptEntry(t *testing.T) {
	cache, mr := newTestCache(t)
	if err := mr.Set(adsListKey, "{not json"); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Get(context.Background()); ok {
		t.Fatal("corrupt entry reported as hit")
	}
}

func TestAdsCacheWithoutRedis(t *testing.T) {
	ctx := context.Background()
	var nilCache *AdsCache
	noClient := NewAdsCache(nil, time.Minute)

	for _, c := range []*AdsCache{nilCache, noClient} {
		c.Set(ctx, &models.AdsDto{})
		c.Invalidate(ctx)
		if _, ok := c.Get(ctx); ok {
			t.Fatal("cache without client reported a hit")
		}
	}
}
