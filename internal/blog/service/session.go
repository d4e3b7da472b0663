package service

import (
	"time"

	"github.com/inkwell-press/inkwell/pkg/jwtx"
)

// SessionService issues and verifies the signed, time-bounded session
// tokens handed to clients after login. Tokens are self-contained and never
// stored server-side.
type SessionService struct {
	signer   jwtx.Signer
	verifier jwtx.Verifier
	issuer   string
	ttl      time.Duration
}

// NewSessionService builds a session service around a symmetric secret
// loaded from runtime configuration. The secret must never appear in
// source or logs.
func NewSessionService(secret []byte, issuer string, ttl time.Duration) (*SessionService, error) {
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return nil, err
	}
	verifier, err := jwtx.NewVerifierHS256(secret, jwtx.VerifyOptions{
		Issuer: issuer,
		Leeway: 30 * time.Second,
	})
	if err != nil {
		return nil, err
	}

	return &SessionService{
		signer:   signer,
		verifier: verifier,
		issuer:   issuer,
		ttl:      ttl,
	}, nil
}

// Issue mints a token binding the account identity, expiring TTL from now.
// The returned expiry feeds the cookie's Max-Age.
func (s *SessionService) Issue(accountID, username string) (string, time.Time, error) {
	now := time.Now().UTC()
	claims := jwtx.NewSessionClaims(accountID, username, s.issuer, s.ttl, now)

	raw, err := s.signer.Sign(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	return raw, claims.ExpiresAt.Time, nil
}

// Verify decodes a raw token. All failures surface as jwtx.ErrInvalidToken.
func (s *SessionService) Verify(raw string) (jwtx.Claims, error) {
	return s.verifier.Verify(raw)
}

// Verifier exposes the underlying verifier for the HTTP session guard.
func (s *SessionService) Verifier() jwtx.Verifier { return s.verifier }

// TTL reports the configured session lifetime.
func (s *SessionService) TTL() time.Duration { return s.ttl }
