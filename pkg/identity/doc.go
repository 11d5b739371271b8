// Package identity provides authenticated identity management for requests.
//
// The token middleware verifies the X-USER-NAME/X-USER-TOKEN header pair and
// stores an Identity in the request context; handlers retrieve it for
// logging.
//
// # Basic Usage
//
//	// Store in request context
//	ctx = identity.Set(ctx, &identity.Identity{Email: email})
//
//	// Retrieve from context
//	id, ok := identity.Get(ctx)
package identity
