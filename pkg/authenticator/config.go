package authenticator

import (
	"errors"
	"fmt"
	"time"
)

// MinTokenTTL is the shortest token lifetime the authenticator accepts.
// Shorter lifetimes churn logins faster than clock skew tolerances allow.
const MinTokenTTL = 5 * time.Minute

// Config holds authenticator configuration. It is validated once by New and
// never mutated afterwards, so a configured Service is safe for concurrent use.
type Config struct {
	// Secret is the HMAC signing key for issued tokens.
	Secret string `env:"AUTH_SECRET,required"`

	// UserStorePath points at the JSON credential store file. Required unless
	// a credential validator is injected via WithValidator.
	UserStorePath string `env:"AUTH_USER_STORE"`

	// TokenTTL is the lifetime of issued tokens (default: 1h, minimum: 5m).
	TokenTTL time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"60m"`

	// InsecureHTTP advertises that credentials may be transmitted over
	// plaintext HTTP. Advisory only; reported by Describe, never enforced.
	InsecureHTTP bool `env:"AUTH_INSECURE_HTTP" envDefault:"false"`
}

// DefaultConfig returns default authenticator configuration.
// Secret and UserStorePath have no safe defaults and must be provided.
func DefaultConfig() Config {
	return Config{
		TokenTTL:     time.Hour,
		InsecureHTTP: false,
	}
}

// Validate checks the configuration invariants shared by every deployment.
func (c Config) Validate() error {
	if c.Secret == "" {
		return errors.Join(ErrInvalidConfig, ErrMissingSecret)
	}
	if c.TokenTTL < MinTokenTTL {
		return errors.Join(ErrInvalidConfig,
			fmt.Errorf("%w: %s is less than %s", ErrTokenTTLTooShort, c.TokenTTL, MinTokenTTL))
	}
	return nil
}
