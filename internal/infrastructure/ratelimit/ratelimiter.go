// Package ratelimit provides request rate limiting backed by redis.
package ratelimit

// Limits configures the per-client request budget. A zero limit disables
// the corresponding window.
type Limits struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

type RateLimiter interface {
	Allow(key string, limits Limits) (bool, error)
	Reset(key string) error
}
