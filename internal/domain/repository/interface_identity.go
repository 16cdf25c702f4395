package repository

import "context"

// IdentityProvider supplies the current user's identifier, if any
type IdentityProvider interface {
	CurrentUserID(ctx context.Context) (string, bool)
}
