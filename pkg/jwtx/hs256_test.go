package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := NewVerifierHS256(testSecret, VerifyOptions{Issuer: "inkwell"})
	require.NoError(t, err)

	claims := NewSessionClaims("01ARZ3NDEKTSV4RRFFQ69G5FAV", "alice", "inkwell", time.Hour, time.Now())
	raw, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	got, err := verifier.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", got.Subject)
	require.Equal(t, "alice", got.Username)
}

func TestVerifyRejectsWithoutLeakingCause(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := NewVerifierHS256(testSecret, VerifyOptions{})
	require.NoError(t, err)

	expired, err := signer.Sign(
		NewSessionClaims("acc", "bob", "", time.Hour, time.Now().Add(-2*time.Hour)),
	)
	require.NoError(t, err)

	otherSigner, err := NewSignerHS256([]byte("ffffffffffffffffffffffffffffffff"))
	require.NoError(t, err)
	tampered, err := otherSigner.Sign(NewSessionClaims("acc", "bob", "", time.Hour, time.Now()))
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"missing":       "",
		"malformed":     "not.a.jwt",
		"expired":       expired,
		"bad signature": tampered,
	} {
		_, err := verifier.Verify(raw)
		// Every rejection must look identical to the caller.
		require.ErrorIs(t, err, ErrInvalidToken, name)
	}
}

func TestVerifyEnforcesIssuer(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := NewVerifierHS256(testSecret, VerifyOptions{Issuer: "inkwell"})
	require.NoError(t, err)

	raw, err := signer.Sign(NewSessionClaims("acc", "bob", "someone-else", time.Hour, time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestWeakSecretRejected(t *testing.T) {
	t.Parallel()

	_, err := NewSignerHS256([]byte("short"))
	require.ErrorIs(t, err, ErrWeakSecret)

	_, err = NewVerifierHS256([]byte("short"), VerifyOptions{})
	require.ErrorIs(t, err, ErrWeakSecret)
}
