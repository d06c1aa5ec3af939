package jwt_test

import (
	"context"
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/jwt"
)

func TestTokenContext(t *testing.T) {
	t.Parallel()

	t.Run("set and get token", func(t *testing.T) {
		ctx := jwt.SetToken(context.Background(), "abc123")

		token, ok := jwt.GetToken(ctx)
		require.True(t, ok)
		assert.Equal(t, "abc123", token)
	})

	t.Run("missing token", func(t *testing.T) {
		_, ok := jwt.GetToken(context.Background())
		assert.False(t, ok)
	})
}

func TestClaimsContext(t *testing.T) {
	t.Parallel()

	t.Run("set and get typed claims", func(t *testing.T) {
		claims := &jwtlib.RegisteredClaims{Subject: "user123"}
		ctx := jwt.SetClaims(context.Background(), claims)

		got, ok := jwt.GetClaims[*jwtlib.RegisteredClaims](ctx)
		require.True(t, ok)
		assert.Equal(t, "user123", got.Subject)
	})

	t.Run("missing claims", func(t *testing.T) {
		_, ok := jwt.GetClaims[*jwtlib.RegisteredClaims](context.Background())
		assert.False(t, ok)
	})

	t.Run("wrong claims type", func(t *testing.T) {
		ctx := jwt.SetClaims(context.Background(), jwtlib.MapClaims{"sub": "user123"})

		_, ok := jwt.GetClaims[*jwtlib.RegisteredClaims](ctx)
		assert.False(t, ok)
	})
}
