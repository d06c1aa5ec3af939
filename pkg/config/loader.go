package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var loadDotEnvOnce sync.Once

// Load populates the provided configuration struct from environment
// variables based on `env` field tags.
//
// The default .env file in the working directory is loaded once per process
// before the first parse; a missing .env file is not an error.
//
// Example:
//
//	type AuthConfig struct {
//		Secret   string        `env:"AUTH_SECRET,required"`
//		TokenTTL time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"60m"`
//	}
//
//	var cfg AuthConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	loadDotEnvOnce.Do(func() {
		// The .env file is optional; real environment variables still apply.
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Useful for configurations required for the application to start.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
