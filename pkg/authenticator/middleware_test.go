package authenticator_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/authenticator"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, err := authenticator.New(testConfig(), authenticator.WithValidator(singleUser("alice", "s3cret")))
	require.NoError(t, err)

	token, err := svc.Authenticate(ctx, "alice", "s3cret")
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := authenticator.ClaimsFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "alice", claims.Subject)
		w.WriteHeader(http.StatusOK)
	})

	handler := authenticator.Middleware(svc)(next)

	t.Run("valid token in header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer "+token.Value)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("valid token in query", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?token="+token.Value, nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?token=not.a.token", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
