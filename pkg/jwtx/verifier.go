package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a session token and gives you back the claims if it's
// legit. Verification is a pure computation, no I/O.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// VerifyOptions captures common expectations used by verifiers.
type VerifyOptions struct {
	// Issuer the token must have (claims.iss). Empty means "don't care".
	Issuer string

	// Leeway allows small clock skew when validating exp/nbf/iat.
	// Because time sync is never perfect.
	Leeway time.Duration
}

// NewVerifierHS256 creates a verifier for tokens minted by NewSignerHS256
// with the same secret.
func NewVerifierHS256(secret []byte, opts VerifyOptions) (Verifier, error) {
	if len(secret) < 32 {
		return nil, ErrWeakSecret
	}
	return &hs256Verifier{secret: secret, opts: opts}, nil
}

type hs256Verifier struct {
	secret []byte
	opts   VerifyOptions
}

func (v *hs256Verifier) Verify(raw string) (Claims, error) {
	if raw == "" {
		return Claims{}, ErrInvalidToken
	}

	parserOpts := []jwt.ParserOption{
		// Pinning the method prevents algorithm-confusion tricks such as
		// alg=none or an asymmetric method with the secret as public key.
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.opts.Leeway),
	}
	if v.opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(v.opts.Issuer))
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, parserOpts...)
	if err != nil || !token.Valid {
		// Collapse every failure mode into one error so responses cannot be
		// used as an oracle for why a token was rejected.
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}
