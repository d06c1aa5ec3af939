package authenticator

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/authkit/pkg/jwt"
)

// Middleware authorizes every request through the service and injects the
// verified claims and raw token into the request context. Requests without a
// valid token are rejected with 401.
func Middleware(svc *Service) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := TokenFromRequest(r)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := svc.Authorize(r.Context(), token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := jwt.SetToken(r.Context(), token)
			ctx = jwt.SetClaims(ctx, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the verified claims injected by Middleware.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	return jwt.GetClaims[*Claims](ctx)
}
