// Package authenticator issues and validates signed session tokens for a
// credential-based login flow.
//
// A host process configures a Service once (signing secret, user-store file
// path, token lifetime, transport-mode flag) and then calls three operations
// per request:
//
//   • Describe – reports the authentication mode (provider tag + secured
//     flag) so callers can advertise how credentials should be transmitted.
//   • Authenticate – checks a username/password pair against the file-backed
//     credential store and returns a signed, time-limited token.
//   • Authorize – verifies a token's signature and expiry and returns the
//     decoded claims.
//
// Tokens are stateless: validity is recomputed entirely from the HMAC
// signature and the embedded expiry, so no session storage or revocation
// list exists.
//
// # Usage
//
// import "github.com/dmitrymomot/authkit/pkg/authenticator"
//
// svc, err := authenticator.New(authenticator.Config{
//     Secret:        "super-secret",
//     UserStorePath: "/etc/app/users.json",
//     TokenTTL:      time.Hour,
// })
// if err != nil {
//     // bad secret, ttl below minimum, or inaccessible store
// }
//
// token, err := svc.Authenticate(ctx, "alice", "s3cret")
// claims, err := svc.Authorize(ctx, token.Value)
//
// The Config struct carries env tags, so it can also be populated from the
// environment via pkg/config:
//
// var cfg authenticator.Config
// if err := config.Load(&cfg); err != nil { ... }
//
// # HTTP Glue
//
// Request-field extraction is host-specific and lives outside the core
// contract: CredentialsFromRequest (query preferred over form body),
// TokenFromRequest (query parameter, then Authorization Bearer header), and
// Middleware, which authorizes each request and injects the verified claims
// into the request context for retrieval via ClaimsFromContext.
//
// # Error Handling
//
// Setup failures match ErrInvalidConfig; the specific cause (ErrMissingSecret,
// ErrTokenTTLTooShort, ErrStoreUnavailable, ErrMissingStorePath) matches too.
// Runtime rejections match ErrUnauthorized together with the specific cause
// (ErrInvalidCredentials, ErrNoToken, ErrTokenExpired, ErrTokenInvalid), so a
// handler can map the whole class to 401 with a single errors.Is check.
// Credential-store I/O and parse failures propagate unchanged; no retries are
// performed.
//
// # Concurrency
//
// Configuration is immutable after New. Authenticate and Authorize calls are
// independent and stateless and may run fully in parallel.
package authenticator
