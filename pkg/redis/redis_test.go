package redis

import (
	"context"
	"testing"

	"github.com/KarinaMa20040822/starwish/backend/pkg/config"
)

func disabledClient(t *testing.T) *Client {
	t.Helper()

	client, err := New(&config.Config{
		Redis: config.RedisConfig{Enabled: false},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

func TestNewClientDisabled(t *testing.T) {
	client := disabledClient(t)
	if client.Enabled() {
		t.Error("Expected client to be disabled")
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	limiter := NewRateLimiter(disabledClient(t), "test")

	// With Redis disabled, everything passes
	allowed, remaining, err := limiter.Allow(context.Background(), Click108RateLimit)
	if err != nil {
		t.Fatalf("Allow() error = %v", err)
	}
	if !allowed {
		t.Error("Expected request to be allowed when Redis disabled")
	}
	if remaining != Click108RateLimit.Limit {
		t.Errorf("remaining = %d, want %d", remaining, Click108RateLimit.Limit)
	}
}

func TestCacheDisabled(t *testing.T) {
	cache := NewCache(disabledClient(t), "starwish")
	ctx := context.Background()

	if err := cache.Set(ctx, "k", map[string]string{"a": "b"}, TTLShort); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var dest map[string]string
	hit, err := cache.Get(ctx, "k", &dest)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if hit {
		t.Error("Expected cache miss when Redis disabled")
	}

	if err := cache.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}

func TestCacheKeys(t *testing.T) {
	if got := HoroscopeKey("2026-08-29", 7); got != "horoscope:2026-08-29:7" {
		t.Errorf("HoroscopeKey = %q", got)
	}
	if got := AlmanacKey("2026-08-29"); got != "almanac:2026-08-29" {
		t.Errorf("AlmanacKey = %q", got)
	}
}
