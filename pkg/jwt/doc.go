// Package jwt provides utilities for generating, parsing, and validating
// signed tokens as well as HTTP middleware and context helpers for Go
// services.
//
// The implementation is a thin wrapper around github.com/golang-jwt/jwt/v5
// restricted to the HS256 (HMAC-SHA256) algorithm. A high-level Service type
// wraps signing and verification while accepting any claims structure that
// satisfies the library's Claims interface, including jwt.RegisteredClaims
// and custom structs embedding it.
//
// Context helper functions make it easy to attach a token and its claims to a
// context.Context and retrieve them later in the request lifecycle.
//
// # Architecture
//
//   • Service – signs and verifies tokens.
//   • context.go – helper functions for working with context.
//   • middleware.go – HTTP middleware that extracts a token (from header,
//     query, or custom header) and injects verified claims into the request
//     context.
//   • errors.go – sentinel error values returned by the package.
//
// # Usage
//
// import "github.com/dmitrymomot/authkit/pkg/jwt"
//
// // Initialise the service.
// svc, err := jwt.NewFromString("super-secret")
// if err != nil {
//     // handle error
// }
//
// // Generate a token.
// claims := jwtlib.RegisteredClaims{
//     Subject:   "123",
//     ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(24 * time.Hour)),
// }
// token, err := svc.Generate(claims)
//
// // Parse the token back.
// parsed := &jwtlib.RegisteredClaims{}
// if err := svc.Parse(token, parsed); err != nil {
//     // handle invalid / expired token
// }
//
// // Use middleware in an http.Handler chain.
// http.Handle("/api", jwt.Middleware(svc)(yourHandler))
//
// # Error Handling
//
// Errors such as ErrExpiredToken or ErrInvalidSignature are returned as
// sentinel variables and can be compared using errors.Is. Underlying library
// errors are never exposed directly so callers do not have to depend on
// golang-jwt error values.
package jwt
