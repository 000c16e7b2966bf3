package cookie

import (
	"fmt"
	"net/http"
	"strings"
)

// Config holds cookie jar configuration.
type Config struct {
	// Secrets is a comma-separated list; the first entry seals new cookies.
	Secrets  []string `env:"COOKIE_SECRETS,required" envSeparator:","`
	Domain   string   `env:"COOKIE_DOMAIN" envDefault:""`
	Secure   bool     `env:"COOKIE_SECURE" envDefault:"false"`
	SameSite string   `env:"COOKIE_SAME_SITE" envDefault:"lax"`
}

// NewFromConfig creates a Jar from cfg.
func NewFromConfig(cfg Config, opts ...Option) (*Jar, error) {
	mode, err := parseSameSite(cfg.SameSite)
	if err != nil {
		return nil, err
	}

	secrets := make([]string, 0, len(cfg.Secrets))
	for _, s := range cfg.Secrets {
		secrets = append(secrets, strings.TrimSpace(s))
	}

	base := []Option{WithSameSite(mode), WithSecure(cfg.Secure)}
	if cfg.Domain != "" {
		base = append(base, WithDomain(cfg.Domain))
	}
	return New(secrets, append(base, opts...)...)
}

func parseSameSite(s string) (http.SameSite, error) {
	switch strings.ToLower(s) {
	case "", "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	default:
		return 0, fmt.Errorf("cookie: unknown same-site mode %q", s)
	}
}
