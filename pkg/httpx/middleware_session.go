package httpx

import (
	"net/http"

	"github.com/inkwell-press/inkwell/pkg/jwtx"
	"github.com/inkwell-press/inkwell/pkg/slogx"
)

// SessionCookieName is the cookie the session token travels in.
const SessionCookieName = "token"

// SessionMiddleware is the authorization guard for mutation endpoints: it
// extracts the session cookie, verifies it, and exposes the caller identity
// to downstream handlers. Any verification failure short-circuits with a
// uniform 401 before the handler runs.
func SessionMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			var raw string
			if c, err := r.Cookie(SessionCookieName); err == nil {
				raw = c.Value
			}

			claims, err := v.Verify(raw)
			if err != nil {
				// One response for missing, malformed, tampered and expired
				// tokens alike.
				log.Warn("session verification failed")
				WriteError(w, http.StatusUnauthorized, "unauthenticated",
					"a valid session is required")
				return
			}

			ctx = ContextWithIdentity(ctx, Identity{
				AccountID: claims.Subject,
				Username:  claims.Username,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
