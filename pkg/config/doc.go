// Package config loads application configuration from environment variables
// into tagged Go structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`: the
// default `.env` file is loaded once per process (if present), then the
// environment is parsed into any struct annotated with `env` / `envDefault`
// field tags.
//
// # Usage
//
//	type AuthConfig struct {
//	    Secret   string        `env:"AUTH_SECRET,required"`
//	    StorePath string       `env:"AUTH_USER_STORE"`
//	    TokenTTL time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"60m"`
//	}
//
//	var cfg AuthConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// MustLoad panics on failure for configuration the process cannot start
// without.
//
// # Error Handling
//
// Parse failures are returned joined with ErrParsingConfig so callers can
// classify them with errors.Is while still seeing the underlying field error.
package config
