// Package identity resolves the calling actor for the tracking APIs.
package identity

import (
	"context"
	"strings"

	"encore.dev/beta/auth"
	"encore.dev/beta/errs"
)

// Data is attached to every authenticated request.
type Data struct {
	ActorID string
}

// AuthHandler maps a bearer token to an actor id. Tokens are opaque actor
// identifiers issued by the marketplace gateway; validating their signature
// happens upstream.
//
//encore:authhandler
func AuthHandler(ctx context.Context, token string) (auth.UID, *Data, error) {
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if token == "" {
		return "", nil, &errs.Error{Code: errs.Unauthenticated, Message: "missing auth token"}
	}
	if len(token) > 100 {
		return "", nil, &errs.Error{Code: errs.Unauthenticated, Message: "invalid auth token"}
	}
	return auth.UID(token), &Data{ActorID: token}, nil
}
