// Package ratelimit implements per-client token bucket rate limiting
// for the forecast API.
package ratelimit

import (
	"sync"
	"time"
)

// bucket is a token bucket for a single client+endpoint pair. Tokens
// refill continuously at rate per second up to cap. lastSeen feeds the
// idle-bucket sweeper.
type bucket struct {
	mu       sync.Mutex
	cap      float64
	rate     float64
	tokens   float64
	refilled time.Time
	lastSeen time.Time
}

func newBucket(capacity int, ratePerSec float64) *bucket {
	now := time.Now()
	return &bucket{
		cap:      float64(capacity),
		rate:     ratePerSec,
		tokens:   float64(capacity),
		refilled: now,
		lastSeen: now,
	}
}

// take refills the bucket for elapsed time, then tries to consume one
// token. It reports whether the request is allowed, how many whole
// tokens remain, and when the bucket will be full again. Everything
// happens under one lock so remaining and reset are consistent with
// the consume decision.
func (b *bucket) take() (allowed bool, remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.refilled).Seconds() * b.rate
	if b.tokens > b.cap {
		b.tokens = b.cap
	}
	b.refilled = now
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		allowed = true
	}

	remaining = int(b.tokens)
	reset = now
	if b.tokens < b.cap {
		reset = now.Add(time.Duration((b.cap - b.tokens) / b.rate * float64(time.Second)))
	}
	return allowed, remaining, reset
}

func (b *bucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastSeen.Before(cutoff)
}

// Info describes the rate limit state after a request was checked. It
// is rendered into the X-RateLimit response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds limiter settings. Whitelisted client IDs bypass
// limiting entirely; blacklisted ones are always refused.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter tracks one token bucket per client+endpoint+method key.
type Limiter struct {
	mu      sync.RWMutex
	buckets map[string]*bucket
	config  *Config
	sweeper *time.Ticker
	stop    chan struct{}
}

// NewLimiter builds a limiter from config. A nil config enables
// limiting with a 1000 req/min default and a 5 minute sweep.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.sweeper = time.NewTicker(config.CleanupInterval)
		l.stop = make(chan struct{})
		go l.sweepLoop()
	}

	return l
}

// Allow decides whether a request from clientID to the given endpoint
// and method may proceed. Limit 0 in the returned Info means the
// request was not subject to limiting.
func (l *Limiter) Allow(clientID, endpoint, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	ec := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if ec == nil {
		ec = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}
	if ec.Limit <= 0 {
		// Unlimited endpoint, e.g. the health check.
		return true, Info{Allowed: true}
	}

	b := l.bucketFor(clientID+":"+endpoint+":"+method, ec)
	allowed, remaining, reset := b.take()

	info := Info{
		Allowed:   allowed,
		Limit:     ec.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !allowed {
		if ra := time.Until(reset); ra > 0 {
			info.RetryAfter = ra
		}
	}
	return allowed, info
}

func (l *Limiter) bucketFor(key string, ec *EndpointConfig) *bucket {
	l.mu.RLock()
	b, ok := l.buckets[key]
	l.mu.RUnlock()
	if ok {
		return b
	}

	capacity := ec.Burst
	if capacity <= 0 {
		capacity = ec.Limit
	}
	fresh := newBucket(capacity, float64(ec.Limit)/ec.Window.Seconds())

	l.mu.Lock()
	defer l.mu.Unlock()
	if b, ok := l.buckets[key]; ok {
		// Lost the race to another goroutine; use its bucket.
		return b
	}
	l.buckets[key] = fresh
	return fresh
}

func (l *Limiter) sweepLoop() {
	for {
		select {
		case <-l.sweeper.C:
			l.sweep(time.Now().Add(-time.Hour))
		case <-l.stop:
			return
		}
	}
}

// sweep drops buckets not touched since cutoff so one-off clients do
// not accumulate forever.
func (l *Limiter) sweep(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.idleSince(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop terminates the background sweeper.
func (l *Limiter) Stop() {
	if l.sweeper != nil {
		l.sweeper.Stop()
	}
	if l.stop != nil {
		close(l.stop)
	}
}
