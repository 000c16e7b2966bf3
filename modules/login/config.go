package login

import (
	"time"

	"github.com/dmitrymomot/loginkit/pkg/ratelimiter"
)

// Config holds the login module settings.
type Config struct {
	SuccessRedirect string        `env:"LOGIN_SUCCESS_REDIRECT" envDefault:"/dashboard"`
	RateCapacity    int           `env:"LOGIN_RATE_CAPACITY" envDefault:"5"`
	RateRefill      int           `env:"LOGIN_RATE_REFILL" envDefault:"1"`
	RateInterval    time.Duration `env:"LOGIN_RATE_INTERVAL" envDefault:"1m"`
}

// DefaultConfig mirrors the env defaults.
func DefaultConfig() Config {
	return Config{
		SuccessRedirect: "/dashboard",
		RateCapacity:    5,
		RateRefill:      1,
		RateInterval:    time.Minute,
	}
}

// RateLimit returns the token bucket shape for login attempts.
func (c Config) RateLimit() ratelimiter.Config {
	return ratelimiter.Config{
		Capacity:       c.RateCapacity,
		RefillRate:     c.RateRefill,
		RefillInterval: c.RateInterval,
	}
}
