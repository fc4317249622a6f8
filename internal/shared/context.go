package shared

import "context"

type contextKey int

const identityKey contextKey = iota

// Identity is the authenticated caller attached to a request context.
type Identity struct {
	Username string
	Role     string
}

// WithIdentity returns ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom extracts the caller identity from ctx.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
