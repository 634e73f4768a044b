package auth

import (
	"net/http"
	"strings"

	"booklibrary/internal/httpx"
)

// Middleware rejects requests without a valid, unrevoked bearer token. The
// token subject becomes the request's user id. revoked may be nil.
func Middleware(secret string, revoked Revocations) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := bearerClaims(r, secret, revoked)
			if !ok {
				httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
				return
			}
			ctx := httpx.ContextWithUser(r.Context(), claims.Sub, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalMiddleware resolves the caller when a valid token is present and
// lets anonymous requests through unchanged.
func OptionalMiddleware(secret string, revoked Revocations) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, ok := bearerClaims(r, secret, revoked); ok {
				r = r.WithContext(httpx.ContextWithUser(r.Context(), claims.Sub, claims.Role))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// bearerClaims fails closed when the revocation lookup errors.
func bearerClaims(r *http.Request, secret string, revoked Revocations) (*Claims, bool) {
	token := bearerToken(r)
	if token == "" {
		return nil, false
	}
	claims, err := ParseToken(secret, token)
	if err != nil {
		return nil, false
	}
	if revoked != nil && claims.ID != "" {
		isRevoked, err := revoked.IsRevoked(r.Context(), claims.ID)
		if err != nil || isRevoked {
			return nil, false
		}
	}
	return claims, true
}
