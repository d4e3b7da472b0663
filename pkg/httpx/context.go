package httpx

import "context"

// Identity is the authenticated caller exposed to guarded handlers.
type Identity struct {
	AccountID string
	Username  string
}

type ctxKey string

const ctxKeyIdentity ctxKey = "identity"

// ContextWithIdentity records the verified caller on the request context.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, id)
}

// IdentityFromContext returns the caller injected by SessionMiddleware.
// ok is false on unguarded routes.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKeyIdentity).(Identity)
	return id, ok
}
