package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the default lifetime for session tokens. Kept short
// so a leaked cookie has a bounded window of use.
const DefaultSessionTTL = time.Hour

// Claims are the session-token claims. The subject carries the account ID;
// the username rides along so guarded handlers can answer identity queries
// without a store round-trip.
type Claims struct {
	jwt.RegisteredClaims

	Username string `json:"username,omitempty"`
}

// NewSessionClaims builds minimally-correct claims for a freshly
// authenticated account.
func NewSessionClaims(accountID, username, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Username: username,
	}
}
