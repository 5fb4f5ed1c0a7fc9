package auth

import (
	"context"

	"github.com/yourname/wellnesstracker/internal"
)

// Provider resolves a bearer token to the user it belongs to, either by
// verifying it locally or by delegating to an external auth service.
type Provider interface {
	ValidateTokenLocal(token string) (*internal.User, error)
	ValidateTokenRemote(ctx context.Context, token string) (*internal.User, error)
}
