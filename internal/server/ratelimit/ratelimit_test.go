package ratelimit

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{},
		Blacklist:     map[string]bool{},
		EndpointConfigs: []EndpointConfig{
			{Path: "/matches/recompute", Method: "POST", Limit: 60, Window: time.Minute, Burst: 2},
		},
	}
}

func newTestLimiter(cfg *Config) (*Limiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return NewLimiterWith(cfg, NewMemoryStore(), clock), clock
}

func TestLimiter_BurstThenLimited(t *testing.T) {
	limiter, _ := newTestLimiter(testConfig())

	allowed, _ := limiter.Allow("1.2.3.4", "/matches/recompute", "POST")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("1.2.3.4", "/matches/recompute", "POST")
	assert.True(t, allowed)

	allowed, info := limiter.Allow("1.2.3.4", "/matches/recompute", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 60, info.Limit)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_RefillOverTime(t *testing.T) {
	limiter, clock := newTestLimiter(testConfig())

	// Drain the burst.
	limiter.Allow("1.2.3.4", "/matches/recompute", "POST")
	limiter.Allow("1.2.3.4", "/matches/recompute", "POST")
	allowed, _ := limiter.Allow("1.2.3.4", "/matches/recompute", "POST")
	assert.False(t, allowed)

	// 60 per minute refills one token per second.
	clock.advance(time.Second)
	allowed, _ = limiter.Allow("1.2.3.4", "/matches/recompute", "POST")
	assert.True(t, allowed)
}

func TestLimiter_ClientsIsolated(t *testing.T) {
	limiter, _ := newTestLimiter(testConfig())

	limiter.Allow("1.2.3.4", "/matches/recompute", "POST")
	limiter.Allow("1.2.3.4", "/matches/recompute", "POST")
	allowed, _ := limiter.Allow("1.2.3.4", "/matches/recompute", "POST")
	assert.False(t, allowed)

	allowed, _ = limiter.Allow("5.6.7.8", "/matches/recompute", "POST")
	assert.True(t, allowed)
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	limiter, _ := newTestLimiter(testConfig())

	for i := 0; i < 500; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/health", "GET")
		assert.True(t, allowed)
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["10.0.0.1"] = true
	limiter, _ := newTestLimiter(cfg)

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/matches/recompute", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	cfg := testConfig()
	cfg.Blacklist["10.0.0.2"] = true
	limiter, _ := newTestLimiter(cfg)

	allowed, _ := limiter.Allow("10.0.0.2", "/matches", "GET")
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter, _ := newTestLimiter(&Config{Enabled: false})

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/matches/recompute", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_DefaultLimitForUnmatchedEndpoint(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultLimit = 3
	limiter, _ := newTestLimiter(cfg)

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/matches", "GET")
		assert.True(t, allowed)
	}
	allowed, info := limiter.Allow("1.2.3.4", "/matches", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 3, info.Limit)
}

func TestLimiter_ConcurrentFirstRequestsShareBucket(t *testing.T) {
	limiter, _ := newTestLimiter(testConfig())

	// All goroutines hit a fresh key at once; bucket creation must not race,
	// so exactly the burst of 2 is admitted.
	var allowed int64
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := limiter.Allow("1.2.3.4", "/matches/recompute", "POST"); ok {
				atomic.AddInt64(&allowed, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(2), allowed)
	assert.Len(t, limiter.store.Keys(), 1)
}

func TestMemoryStore_GetOrSetReturnsExisting(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	first := store.GetOrSet("k", func() *Bucket { return newBucket(2, 1, now) })
	second := store.GetOrSet("k", func() *Bucket { return newBucket(99, 1, now) })

	assert.Same(t, first, second)
	assert.Equal(t, 2, second.capacity)
}

func TestLimiter_IdleBucketCleanup(t *testing.T) {
	limiter, clock := newTestLimiter(testConfig())

	limiter.Allow("1.2.3.4", "/matches/recompute", "POST")
	assert.Len(t, limiter.store.Keys(), 1)

	clock.advance(2 * time.Hour)
	limiter.removeIdleBuckets()

	assert.Empty(t, limiter.store.Keys())
}

func TestMatchEndpoint_ExactAndPrefix(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/matches/recompute", Method: "POST", Limit: 10, Window: time.Hour},
		{Path: "/resumes/", Method: "POST", Limit: 30, Window: time.Minute},
	}

	exact := MatchEndpoint("/matches/recompute", "POST", configs)
	assert.NotNil(t, exact)
	assert.Equal(t, 10, exact.Limit)

	prefix := MatchEndpoint("/resumes/abc-123/ats-score", "POST", configs)
	assert.NotNil(t, prefix)
	assert.Equal(t, 30, prefix.Limit)

	assert.Nil(t, MatchEndpoint("/matches", "GET", configs))
	// Method must match too.
	assert.Nil(t, MatchEndpoint("/matches/recompute", "GET", configs))

	health := MatchEndpoint("/health", "GET", configs)
	assert.NotNil(t, health)
	assert.Equal(t, 0, health.Limit)
}
