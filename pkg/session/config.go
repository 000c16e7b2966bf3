package session

import "time"

// Store backends selectable through Config.Store.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config holds session configuration.
type Config struct {
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sid"`

	// IdleTimeout expires sessions that see no requests for this long.
	IdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"2h"`
	// MaxLifetime caps a session regardless of activity.
	MaxLifetime time.Duration `env:"SESSION_MAX_LIFETIME" envDefault:"720h"`
	// TouchInterval is the minimum time between idle-expiry extensions.
	TouchInterval time.Duration `env:"SESSION_TOUCH_INTERVAL" envDefault:"5m"`

	Store           string        `env:"SESSION_STORE" envDefault:"memory"`
	RedisPrefix     string        `env:"SESSION_REDIS_PREFIX" envDefault:"session:"`
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`
}

// DefaultConfig mirrors the env defaults.
func DefaultConfig() Config {
	return Config{
		CookieName:      "sid",
		IdleTimeout:     2 * time.Hour,
		MaxLifetime:     30 * 24 * time.Hour,
		TouchInterval:   5 * time.Minute,
		Store:           StoreMemory,
		RedisPrefix:     "session:",
		CleanupInterval: 5 * time.Minute,
	}
}
