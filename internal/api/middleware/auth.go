package middleware

import (
	"context"
	"net/http"

	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/auth"
	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/utils"
)

type contextKey string

const principalKey contextKey = "principal"

// Auth verifies the bearer token on every request and attaches the
// resolved principal to the context. Anything short of a valid,
// unexpired, correctly signed token gets a 401.
func Auth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, err := auth.TokenFromHeader(r.Header.Get("Authorization"))
			if err != nil {
				utils.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := tokens.Verify(tokenString)
			if err != nil {
				utils.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFrom returns the principal attached by Auth, if any.
func PrincipalFrom(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(principalKey).(*auth.Claims)
	return claims, ok
}
