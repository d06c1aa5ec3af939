package authenticator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/authkit/pkg/jwt"
	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/userstore"
)

// provider is the namespace tag reported by Describe.
const provider = "credentials"

// defaultIssuer is the iss claim embedded in issued tokens.
const defaultIssuer = "authkit"

// CredentialValidator checks a username/password pair against a backing store.
// Implementations must return (false, nil) for a rejected pair and reserve the
// error return for I/O or parse failures.
type CredentialValidator interface {
	Validate(ctx context.Context, username, password string) (bool, error)
}

// Claims is the payload embedded in issued tokens: subject identity plus the
// registered temporal claims.
type Claims struct {
	jwtlib.RegisteredClaims
}

// Token is an issued session token. Validity is entirely recomputed from the
// signature and embedded expiry at verification time; no server-side record
// is kept.
type Token struct {
	Value     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Descriptor reports the authentication mode so callers can advertise how
// credentials should be transmitted.
type Descriptor struct {
	Provider string `json:"provider"`
	Secured  bool   `json:"secured"`
}

// Service issues and validates signed session tokens for a credential-based
// login flow. Configuration is immutable after New, so a single Service may
// serve concurrent Authenticate/Authorize calls without locking, and multiple
// independently configured instances can coexist in one process.
type Service struct {
	cfg    Config
	signer *jwt.Service
	store  CredentialValidator
	log    *slog.Logger
	now    func() time.Time
	issuer string
}

// Option configures Service creation.
type Option func(*Service)

// WithValidator injects a custom credential validator, replacing the default
// file-backed store. When set, Config.UserStorePath is ignored.
func WithValidator(v CredentialValidator) Option {
	return func(s *Service) {
		if v != nil {
			s.store = v
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock overrides the time source used for token issuance and expiry
// validation. Intended for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIssuer overrides the iss claim embedded in issued tokens.
func WithIssuer(issuer string) Option {
	return func(s *Service) {
		if issuer != "" {
			s.issuer = issuer
		}
	}
}

// New validates cfg and returns a configured Service.
//
// The user store is checked synchronously here: an inaccessible store path is
// a configuration error the caller can handle, not a crash on the first login
// attempt.
func New(cfg Config, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Service{
		cfg:    cfg,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
		issuer: defaultIssuer,
	}
	for _, opt := range opts {
		opt(s)
	}

	signer, err := jwt.NewFromString(cfg.Secret, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	s.signer = signer

	if s.store == nil {
		if cfg.UserStorePath == "" {
			return nil, errors.Join(ErrInvalidConfig, ErrMissingStorePath)
		}
		store, err := userstore.New(cfg.UserStorePath, userstore.WithLogger(s.log))
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, ErrStoreUnavailable, err)
		}
		s.store = store
	}

	return s, nil
}

// Describe reports the configured authentication mode. Pure; no side effects.
// The secured flag is advisory metadata for the caller, not an enforcement.
func (s *Service) Describe() Descriptor {
	return Descriptor{
		Provider: provider,
		Secured:  !s.cfg.InsecureHTTP,
	}
}

// Authenticate checks the username/password pair against the credential store
// and, if valid, returns a signed token expiring after the configured TTL.
//
// Rejection is terminal: an invalid pair returns an error matching both
// ErrUnauthorized and ErrInvalidCredentials and never a token. Store failures
// propagate unchanged so the caller decides retry policy.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*Token, error) {
	if username == "" || password == "" {
		return nil, errors.Join(ErrUnauthorized, ErrInvalidCredentials)
	}

	valid, err := s.store.Validate(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("credential validation failed: %w", err)
	}
	if !valid {
		s.log.InfoContext(ctx, "authentication rejected", logger.Username(username))
		return nil, errors.Join(ErrUnauthorized, ErrInvalidCredentials)
	}

	now := s.now()
	expiresAt := now.Add(s.cfg.TokenTTL)
	claims := Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			Issuer:    s.issuer,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(expiresAt),
		},
	}

	signed, err := s.signer.Generate(claims)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.log.InfoContext(ctx, "token issued",
		logger.Username(username),
		slog.Time("expires_at", expiresAt),
	)

	return &Token{Value: signed, ExpiresAt: expiresAt}, nil
}

// Authorize verifies the token signature and expiry against the configured
// secret and returns the decoded claims. A token is valid if and only if its
// signature verifies and its expiry has not passed; no other state is
// consulted.
//
// All failures match ErrUnauthorized via errors.Is; expired tokens
// additionally match ErrTokenExpired, everything else ErrTokenInvalid.
func (s *Service) Authorize(ctx context.Context, token string) (*Claims, error) {
	if token == "" {
		return nil, errors.Join(ErrUnauthorized, ErrNoToken)
	}

	claims := &Claims{}
	if err := s.signer.Parse(token, claims); err != nil {
		s.log.DebugContext(ctx, "token rejected", logger.Error(err))
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, errors.Join(ErrUnauthorized, ErrTokenExpired)
		}
		return nil, errors.Join(ErrUnauthorized, ErrTokenInvalid)
	}

	return claims, nil
}
