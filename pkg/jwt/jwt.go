package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Service signs and verifies tokens using HMAC-SHA256.
// The signing key is kept in memory only and should be cryptographically secure.
type Service struct {
	signingKey []byte
	timeFunc   func() time.Time
}

// Option configures Service creation.
type Option func(*Service)

// WithTimeFunc overrides the time source used for temporal claim validation.
// Nil functions are ignored. Intended for deterministic tests.
func WithTimeFunc(fn func() time.Time) Option {
	return func(s *Service) {
		if fn != nil {
			s.timeFunc = fn
		}
	}
}

// New creates a new token service with the provided signing key.
// The key should be at least 32 bytes for adequate security with HMAC-SHA256.
func New(signingKey []byte, opts ...Option) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}

	s := &Service{
		signingKey: signingKey,
		timeFunc:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// NewFromString creates a new token service from a string signing key.
// Convenience wrapper around New() for string-based configuration.
func NewFromString(signingKey string, opts ...Option) (*Service, error) {
	if signingKey == "" {
		return nil, ErrMissingSigningKey
	}

	return New([]byte(signingKey), opts...)
}

// Generate creates a signed token carrying the given claims.
func (s *Service) Generate(claims jwtlib.Claims) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Parse verifies a token and unmarshals its claims into the provided structure.
// Only HS256 is accepted; tokens signed with any other method are rejected to
// prevent algorithm confusion attacks. Temporal claims are validated against
// the service time source.
func (s *Service) Parse(tokenString string, claims jwtlib.Claims) error {
	if tokenString == "" {
		return ErrInvalidToken
	}
	if claims == nil {
		return ErrMissingClaims
	}

	token, err := jwtlib.ParseWithClaims(tokenString, claims,
		func(*jwtlib.Token) (any, error) { return s.signingKey, nil },
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(s.timeFunc),
	)

	switch {
	case err == nil && token.Valid:
		return nil
	case errors.Is(err, jwtlib.ErrTokenExpired):
		return ErrExpiredToken
	case errors.Is(err, jwtlib.ErrTokenNotValidYet):
		return ErrInvalidToken
	case errors.Is(err, jwtlib.ErrTokenSignatureInvalid):
		return ErrInvalidSignature
	case errors.Is(err, jwtlib.ErrTokenMalformed):
		return ErrInvalidToken
	default:
		return errors.Join(ErrInvalidToken, err)
	}
}
