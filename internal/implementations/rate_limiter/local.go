package ratelimiter

import (
	ratelimiter "brainbox/internal/core/domain/rate_limiter"
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Local keeps one token bucket per key in process memory. It is used when
// no Redis instance is configured.
//
// A bucket left idle for a whole limit interval is full again, so it is
// dropped on the next sweep and recreated on demand.
type Local struct {
	buckets   map[string]*localBucket
	lastSweep time.Time
	lock      sync.Mutex
	now       func() time.Time
}

type localBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewLocal(now func() time.Time) *Local {
	if now == nil {
		now = time.Now
	}
	return &Local{buckets: map[string]*localBucket{}, lastSweep: now(), now: now}
}

func (l *Local) CheckLimit(ctx context.Context, key string, limit ratelimiter.Limit) ratelimiter.Result {
	if ctx.Err() != nil {
		return ratelimiter.NotAllowed()
	}
	now := l.now()
	if l.limiterFor(key, limit, now).AllowN(now, 1) {
		return ratelimiter.Allowed()
	}
	return ratelimiter.NotAllowed()
}

func (l *Local) limiterFor(key string, limit ratelimiter.Limit, now time.Time) *rate.Limiter {
	l.lock.Lock()
	defer l.lock.Unlock()

	interval := limit.Interval.Duration()
	if now.Sub(l.lastSweep) >= interval {
		l.sweep(now, interval)
	}

	if bucket, ok := l.buckets[key]; ok {
		bucket.lastSeen = now
		return bucket.limiter
	}
	every := interval / time.Duration(max(limit.Value, 1))
	limiter := rate.NewLimiter(rate.Every(every), int(limit.Value))
	l.buckets[key] = &localBucket{limiter: limiter, lastSeen: now}
	return limiter
}

func (l *Local) sweep(now time.Time, idle time.Duration) {
	for key, bucket := range l.buckets {
		if now.Sub(bucket.lastSeen) >= idle {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}
