package auth

import (
	"net/http"
	"strings"

	"github.com/velvet-portal/velvet-portal/internal/platform/httpx"
	"github.com/velvet-portal/velvet-portal/internal/shared"
)

// RequireAuth gates routes behind a verified bearer token. On success the
// derived principal is attached to the request context; the guard itself
// keeps no state across requests.
func RequireAuth(tokens *Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				httpx.Error(w, http.StatusUnauthorized, "authentication required")
				return
			}
			result := tokens.Verify(raw)
			if result.Status != TokenValid {
				// Expired and forged tokens are indistinguishable to the
				// client; the reason stays internal.
				httpx.Error(w, http.StatusForbidden, "invalid or expired token")
				return
			}
			principal := shared.Principal{Email: result.Claims.Email, Name: result.Claims.Name}
			ctx := shared.ContextWithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
