// Package ratelimit provides per-client token-bucket rate limiting for the
// HTTP API.
package ratelimit

import (
	"sync"
	"time"
)

// Bucket is a token bucket for a single client+endpoint combination.
// Tokens refill continuously at refillRate per second up to capacity.
type Bucket struct {
	capacity   int
	refillRate float64
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
	mu         sync.Mutex
}

func newBucket(capacity int, refillRate float64, now time.Time) *Bucket {
	return &Bucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: now,
		lastAccess: now,
	}
}

func (b *Bucket) refill(now time.Time) {
	elapsed := now.Sub(b.lastRefill)
	b.tokens = min(float64(b.capacity), b.tokens+elapsed.Seconds()*b.refillRate)
	b.lastRefill = now
}

// take consumes one token if available. Callers must hold no other lock.
func (b *Bucket) take(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill(now)
	b.lastAccess = now
	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return true
	}
	return false
}

// status reports remaining tokens and when the bucket will be full again.
func (b *Bucket) status(now time.Time) (remaining int, resetTime time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill(now)
	remaining = int(b.tokens)
	if b.tokens < float64(b.capacity) {
		needed := float64(b.capacity) - b.tokens
		resetTime = now.Add(time.Duration(needed / b.refillRate * float64(time.Second)))
	} else {
		resetTime = now
	}
	return remaining, resetTime
}

func (b *Bucket) accessedBefore(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastAccess.Before(cutoff)
}

// Info describes the rate limit state returned with each decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter applies token-bucket limits per client and endpoint. Buckets live
// in a BucketStore and time flows through a Clock, so both are injectable.
type Limiter struct {
	store         BucketStore
	clock         Clock
	config        *Config
	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a rate limiter with an in-memory store and the system
// clock. Use NewLimiterWith to inject either.
func NewLimiter(config *Config) *Limiter {
	return NewLimiterWith(config, NewMemoryStore(), SystemClock())
}

// NewLimiterWith creates a rate limiter with an explicit store and clock.
func NewLimiterWith(config *Config, store BucketStore, clock Clock) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Whitelist:       make(map[string]bool),
			Blacklist:       make(map[string]bool),
		}
	}

	l := &Limiter{
		store:  store,
		clock:  clock,
		config: config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow reports whether a request from clientID to the given endpoint is
// within its limit, consuming a token when it is.
func (l *Limiter) Allow(clientID, endpoint, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{Allowed: false}
	}

	endpointConfig := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if endpointConfig == nil {
		endpointConfig = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}

	// Unlimited endpoint (health check).
	if endpointConfig.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	now := l.clock.Now()
	key := clientID + ":" + endpoint + ":" + method
	bucket := l.bucket(key, endpointConfig, now)

	allowed := bucket.take(now)
	remaining, resetTime := bucket.status(now)

	var retryAfter time.Duration
	if !allowed {
		retryAfter = resetTime.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
	}

	return allowed, Info{
		Allowed:    allowed,
		Limit:      endpointConfig.Limit,
		Remaining:  remaining,
		ResetTime:  resetTime,
		RetryAfter: retryAfter,
	}
}

func (l *Limiter) bucket(key string, cfg *EndpointConfig, now time.Time) *Bucket {
	// GetOrSet is atomic, so concurrent first requests for a key share one
	// bucket instead of racing separate creations.
	return l.store.GetOrSet(key, func() *Bucket {
		capacity := cfg.Burst
		if capacity <= 0 {
			capacity = cfg.Limit
		}
		refillRate := float64(cfg.Limit) / cfg.Window.Seconds()
		return newBucket(capacity, refillRate, now)
	})
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.removeIdleBuckets()
		case <-l.cleanupStop:
			return
		}
	}
}

// removeIdleBuckets drops buckets idle for over an hour so the store does
// not grow without bound.
func (l *Limiter) removeIdleBuckets() {
	cutoff := l.clock.Now().Add(-1 * time.Hour)
	for _, key := range l.store.Keys() {
		if b, ok := l.store.Get(key); ok && b.accessedBefore(cutoff) {
			l.store.Delete(key)
		}
	}
}

// Stop stops the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
