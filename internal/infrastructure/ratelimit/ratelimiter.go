// Package ratelimit guards the login endpoint against credential stuffing.
package ratelimit

import "context"

type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

// LoginLimits is the config applied to login attempts, keyed per
// username+IP pair.
var LoginLimits = RateLimitConfig{
	RequestsPerMinute: 10,
	RequestsPerHour:   60,
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error)
	Reset(ctx context.Context, key string) error
}

// NoopRateLimiter allows everything; used when redis is not configured.
type NoopRateLimiter struct{}

func (NoopRateLimiter) Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error) {
	return true, nil
}

func (NoopRateLimiter) Reset(ctx context.Context, key string) error {
	return nil
}
