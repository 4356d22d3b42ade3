package middleware

import (
	"net/http"
	"strings"

	"github.com/barberlink/admin-gateway/internal/api/handlers"
	"github.com/barberlink/admin-gateway/pkg/authctx"
)

const msgMissingToken = "oturum bulunamadı"

// Auth requires a bearer token on every protected route and stores it in the
// request context. The token is opaque to the gateway: it is forwarded to the
// booking backend as-is, and the backend decides validity. A 401 from
// upstream is the session-expiry signal the admin UI acts on.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		ctx := authctx.WithToken(r.Context(), token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
