package ratelimit

import "time"

// tokenBucket allows capacity requests at once and refills at refillRate tokens
// per second. Callers pass the current time, and the Limiter serializes access.
type tokenBucket struct {
	capacity   float64
	refillRate float64
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
}

func newTokenBucket(capacity int, refillRate float64, now time.Time) *tokenBucket {
	return &tokenBucket{
		capacity:   float64(capacity),
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: now,
		lastAccess: now,
	}
}

func (b *tokenBucket) refill(now time.Time) {
	if elapsed := now.Sub(b.lastRefill); elapsed > 0 {
		b.tokens = min(b.capacity, b.tokens+elapsed.Seconds()*b.refillRate)
		b.lastRefill = now
	}
}

// take consumes a token if one is available.
func (b *tokenBucket) take(now time.Time) bool {
	b.refill(now)
	b.lastAccess = now
	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// remaining returns whole tokens left and when the bucket will be full again.
func (b *tokenBucket) remaining(now time.Time) (int, time.Time) {
	b.refill(now)
	if b.tokens >= b.capacity || b.refillRate <= 0 {
		return int(b.tokens), now
	}
	missing := b.capacity - b.tokens
	return int(b.tokens), now.Add(time.Duration(missing / b.refillRate * float64(time.Second)))
}

// nextToken returns how long until one token is available.
func (b *tokenBucket) nextToken(now time.Time) time.Duration {
	b.refill(now)
	if b.tokens >= 1 || b.refillRate <= 0 {
		return 0
	}
	return time.Duration((1 - b.tokens) / b.refillRate * float64(time.Second))
}
