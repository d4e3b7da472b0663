package jwtx

import "errors"

var (
	// ErrInvalidToken covers every verification failure: missing, malformed,
	// bad signature or expired. Callers must not be able to distinguish the
	// cause, so the verifier collapses all of them into this one error.
	ErrInvalidToken = errors.New("jwtx: invalid token")

	// ErrWeakSecret rejects signing secrets that are too short to resist
	// offline brute force of an HS256 signature.
	ErrWeakSecret = errors.New("jwtx: signing secret must be at least 32 bytes")
)
