// Package ratelimiter implements a token bucket limiter with in-memory and
// Redis-backed stores.
//
//	limiter, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
//	    Capacity:       5,
//	    RefillRate:     1,
//	    RefillInterval: time.Minute,
//	})
//	res, err := limiter.Allow(ctx, "login:"+ip)
//	if !res.Allowed() {
//	    // answer 429, Retry-After: res.RetryAfter()
//	}
//
// Denied requests do not drain the bucket further, so a client that keeps
// retrying while throttled is released as soon as the next token arrives.
package ratelimiter
