package identity

import (
	"context"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Identity.
	Key ContextKey = "identity"
)

// Identity represents the authenticated identity for a request. It combines
// the verified token claims with request-specific context.
type Identity struct {
	// Email is the verified identity, as supplied in the X-USER-NAME header.
	Email string

	// AccessKeyID is the token's issuer claim, the cached access-key id the
	// fingerprint was derived from.
	AccessKeyID string

	// RemoteIP is the client address.
	RemoteIP string
}

// Get retrieves Identity from context.
func Get(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(Key).(*Identity)
	return id, ok
}

// Set stores Identity in context.
func Set(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, Key, id)
}
