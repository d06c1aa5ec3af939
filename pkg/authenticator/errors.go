package authenticator

import "errors"

// Configuration errors. Fatal at setup time: New refuses to return a Service
// in this state. All of them match ErrInvalidConfig via errors.Is.
var (
	ErrInvalidConfig    = errors.New("authenticator: invalid configuration")
	ErrMissingSecret    = errors.New("authenticator: signing secret is required")
	ErrMissingStorePath = errors.New("authenticator: user store path is required")
	ErrTokenTTLTooShort = errors.New("authenticator: token ttl below minimum")
	ErrStoreUnavailable = errors.New("authenticator: user store is not accessible")
)

// Authentication errors. Recoverable by the caller (HTTP 401 equivalent).
// All of them match ErrUnauthorized via errors.Is.
var (
	ErrUnauthorized       = errors.New("authenticator: unauthorized")
	ErrInvalidCredentials = errors.New("authenticator: invalid credentials")
	ErrNoToken            = errors.New("authenticator: no token provided")
	ErrTokenExpired       = errors.New("authenticator: token expired")
	ErrTokenInvalid       = errors.New("authenticator: invalid token")
)
