package authenticator

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/authkit/pkg/jwt"
)

// defaultTokenExtractor looks for a token in the query string first, then in
// the Authorization header.
var defaultTokenExtractor = jwt.ChainExtractors(
	jwt.QueryTokenExtractor("token"),
	jwt.BearerTokenExtractor,
)

// CredentialsFromRequest extracts a username/password pair from an HTTP
// request. Query-string values are preferred; fields absent from the query
// fall back to the form body. This is host-facing glue: the core contract is
// Authenticate(ctx, username, password).
func CredentialsFromRequest(r *http.Request) (username, password string, err error) {
	query := r.URL.Query()
	username = query.Get("username")
	password = query.Get("password")

	if username == "" {
		username = r.PostFormValue("username")
	}
	if password == "" {
		password = r.PostFormValue("password")
	}

	if username == "" || password == "" {
		return "", "", errors.Join(ErrUnauthorized, ErrInvalidCredentials)
	}

	return username, password, nil
}

// TokenFromRequest extracts a session token from an HTTP request, checking
// the "token" query parameter and then the Authorization Bearer header, in
// that order. Absence fails with an error matching both ErrUnauthorized and
// ErrNoToken.
func TokenFromRequest(r *http.Request) (string, error) {
	token, err := defaultTokenExtractor(r)
	if err != nil {
		return "", errors.Join(ErrUnauthorized, ErrNoToken)
	}
	return token, nil
}
