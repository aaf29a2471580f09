package middleware

import (
	"net/http"
	"strings"

	"showcase/internal/auth"
	"showcase/internal/httputil"
)

// AuthMiddleware resolves the bearer token into an actor on the request
// context. Requests without an Authorization header pass through
// anonymous - public reads are allowed - and each handler decides whether
// an actor is required. A present-but-invalid token is rejected here.
func AuthMiddleware(verifier auth.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				httputil.RespondError(w, http.StatusUnauthorized, "malformed authorization header")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, httputil.WithActor(r, claims.Actor()))
		})
	}
}
