package httpapi

import (
	"context"
	"net/http"
	"strings"

	"ShopKart/internal/identity"
	"ShopKart/pkg/kit"
)

type ctxKey string

const adminKey ctxKey = "admin"

func AdminFromContext(ctx context.Context) (identity.Claims, bool) {
	c, ok := ctx.Value(adminKey).(identity.Claims)
	return c, ok
}

// RequireAdmin gates catalog and registry management behind a gate token.
func RequireAdmin(gate *identity.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				kit.WriteError(w, r, http.StatusUnauthorized, "missing token", nil)
				return
			}

			claims, err := gate.Verify(strings.TrimPrefix(authz, "Bearer "))
			if err != nil {
				kit.WriteError(w, r, http.StatusUnauthorized, "invalid token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), adminKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
