package service

import (
	"testing"
	"time"

	"github.com/inkwell-press/inkwell/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var sessionSecret = []byte("0123456789abcdef0123456789abcdef")

func TestSessionIssueAndVerify(t *testing.T) {
	t.Parallel()

	sessions, err := NewSessionService(sessionSecret, "inkwell", time.Hour)
	require.NoError(t, err)

	raw, expiresAt, err := sessions.Issue("acct-123", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := sessions.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "acct-123", claims.Subject)
	require.Equal(t, "alice", claims.Username)
}

func TestSessionVerifyRejectsForeignAndExpiredTokens(t *testing.T) {
	t.Parallel()

	sessions, err := NewSessionService(sessionSecret, "inkwell", time.Hour)
	require.NoError(t, err)

	// Token signed with a different secret.
	other, err := NewSessionService([]byte("ffffffffffffffffffffffffffffffff"), "inkwell", time.Hour)
	require.NoError(t, err)
	foreign, _, err := other.Issue("acct-123", "alice")
	require.NoError(t, err)

	_, err = sessions.Verify(foreign)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)

	// An expired token fails with the identical error class.
	signer, err := jwtx.NewSignerHS256(sessionSecret)
	require.NoError(t, err)
	expired, err := signer.Sign(
		jwtx.NewSessionClaims("acct-123", "alice", "inkwell", time.Minute, time.Now().Add(-2*time.Hour)),
	)
	require.NoError(t, err)

	_, err = sessions.Verify(expired)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}

func TestSessionDefaultTTL(t *testing.T) {
	t.Parallel()

	sessions, err := NewSessionService(sessionSecret, "inkwell", 0)
	require.NoError(t, err)
	require.Equal(t, jwtx.DefaultSessionTTL, sessions.TTL())
}
