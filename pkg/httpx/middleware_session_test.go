package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/inkwell-press/inkwell/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestSessionMiddleware(t *testing.T) {
	t.Parallel()

	secret := []byte("0123456789abcdef0123456789abcdef")
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(secret, jwtx.VerifyOptions{})
	require.NoError(t, err)

	var seen Identity
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	h := Chain(inner, SessionMiddleware(verifier))

	t.Run("valid cookie exposes identity", func(t *testing.T) {
		raw, err := signer.Sign(jwtx.NewSessionClaims("acct-1", "alice", "", time.Hour, time.Now()))
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodPost, "/post", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: raw})
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, Identity{AccountID: "acct-1", Username: "alice"}, seen)
	})

	t.Run("missing cookie short-circuits with 401", func(t *testing.T) {
		called := false
		guarded := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}), SessionMiddleware(verifier))

		r := httptest.NewRequest(http.MethodPost, "/post", nil)
		w := httptest.NewRecorder()
		guarded.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.False(t, called, "handler must not run without a valid session")
	})

	t.Run("garbage cookie gets the same 401", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/post", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.JSONEq(t,
			`{"error":"unauthenticated","error_description":"a valid session is required"}`,
			w.Body.String())
	})
}
