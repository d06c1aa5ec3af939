package authenticator_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/authenticator"
)

func formRequest(t *testing.T, target string, form url.Values) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestCredentialsFromRequest(t *testing.T) {
	t.Parallel()

	t.Run("from query string", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/login?username=alice&password=s3cret", nil)

		username, password, err := authenticator.CredentialsFromRequest(r)
		require.NoError(t, err)
		assert.Equal(t, "alice", username)
		assert.Equal(t, "s3cret", password)
	})

	t.Run("from form body", func(t *testing.T) {
		r := formRequest(t, "/login", url.Values{"username": {"alice"}, "password": {"s3cret"}})

		username, password, err := authenticator.CredentialsFromRequest(r)
		require.NoError(t, err)
		assert.Equal(t, "alice", username)
		assert.Equal(t, "s3cret", password)
	})

	t.Run("query preferred over body", func(t *testing.T) {
		r := formRequest(t, "/login?username=fromquery&password=fromquery",
			url.Values{"username": {"frombody"}, "password": {"frombody"}})

		username, password, err := authenticator.CredentialsFromRequest(r)
		require.NoError(t, err)
		assert.Equal(t, "fromquery", username)
		assert.Equal(t, "fromquery", password)
	})

	t.Run("mixed query and body", func(t *testing.T) {
		r := formRequest(t, "/login?username=alice", url.Values{"password": {"s3cret"}})

		username, password, err := authenticator.CredentialsFromRequest(r)
		require.NoError(t, err)
		assert.Equal(t, "alice", username)
		assert.Equal(t, "s3cret", password)
	})

	t.Run("missing password", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/login?username=alice", nil)

		_, _, err := authenticator.CredentialsFromRequest(r)
		require.ErrorIs(t, err, authenticator.ErrUnauthorized)
		require.ErrorIs(t, err, authenticator.ErrInvalidCredentials)
	})

	t.Run("missing both", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/login", nil)

		_, _, err := authenticator.CredentialsFromRequest(r)
		require.ErrorIs(t, err, authenticator.ErrUnauthorized)
	})
}

func TestTokenFromRequest(t *testing.T) {
	t.Parallel()

	t.Run("from query parameter", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?token=abc123", nil)

		token, err := authenticator.TokenFromRequest(r)
		require.NoError(t, err)
		assert.Equal(t, "abc123", token)
	})

	t.Run("from bearer header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer abc123")

		token, err := authenticator.TokenFromRequest(r)
		require.NoError(t, err)
		assert.Equal(t, "abc123", token)
	})

	t.Run("query preferred over header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?token=fromquery", nil)
		r.Header.Set("Authorization", "Bearer fromheader")

		token, err := authenticator.TokenFromRequest(r)
		require.NoError(t, err)
		assert.Equal(t, "fromquery", token)
	})

	t.Run("no token provided", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := authenticator.TokenFromRequest(r)
		require.ErrorIs(t, err, authenticator.ErrUnauthorized)
		require.ErrorIs(t, err, authenticator.ErrNoToken)
	})
}
