package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/nwcdlabs/codecommit-admin/pkg/identity"
	"github.com/nwcdlabs/codecommit-admin/pkg/token"
)

// TokenAuthenticator is middleware that validates the X-USER-NAME and
// X-USER-TOKEN header pair on protected routes.
type TokenAuthenticator struct {
	Tokens *token.Service
}

// NewTokenAuthenticator creates a new token authenticator middleware
func NewTokenAuthenticator(tokens *token.Service) *TokenAuthenticator {
	return &TokenAuthenticator{Tokens: tokens}
}

// Middleware returns an HTTP middleware that validates tokens. Failures are
// reported in the response envelope with succeeded=false; the HTTP status is
// always 200, matching the rest of the API surface.
func (t *TokenAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := r.Header.Get("X-USER-NAME")
		tokenString := r.Header.Get("X-USER-TOKEN")

		if email == "" || tokenString == "" {
			writeFailure(w, "Please specify user name and token")
			return
		}

		claims, err := t.Tokens.Verify(tokenString, email)
		if err != nil {
			switch {
			case errors.Is(err, token.ErrTokenExpired):
				writeFailure(w, "Token expired, please refresh your token")
			case errors.Is(err, token.ErrTokenInvalid):
				writeFailure(w, "Invalid token, please retrieve a valid token")
			case errors.Is(err, token.ErrNotAuthorized):
				writeFailure(w, fmt.Sprintf("User %s not authorized", email))
			default:
				writeFailure(w, fmt.Sprintf("Unexpected error: %s. Please try again or contact administrator", err))
			}
			return
		}

		remoteIP := r.RemoteAddr
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			remoteIP = forwarded
		}

		ctx := identity.Set(r.Context(), &identity.Identity{
			Email:       email,
			AccessKeyID: claims.Issuer,
			RemoteIP:    remoteIP,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeFailure(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"succeeded": false,
		"payload":   nil,
		"message":   message,
	})
}
