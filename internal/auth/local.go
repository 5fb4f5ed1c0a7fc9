package auth

import (
	"context"
	"errors"

	"github.com/yourname/wellnesstracker/internal"
)

// LocalProvider verifies JWT bearer tokens in-process with a shared
// secret.
type LocalProvider struct {
	secret []byte
	logger internal.Logger
}

func NewLocalProvider(secret string, logger internal.Logger) *LocalProvider {
	return &LocalProvider{secret: []byte(secret), logger: logger}
}

func (a *LocalProvider) ValidateTokenLocal(token string) (*internal.User, error) {
	claims, err := ParseToken(a.secret, token)
	if err != nil {
		a.logger.Warnf("invalid token: %v", err)
		return nil, errors.New("invalid token")
	}
	return &internal.User{ID: claims.UserID, Email: claims.Email}, nil
}

func (a *LocalProvider) ValidateTokenRemote(ctx context.Context, token string) (*internal.User, error) {
	a.logger.Warnf("ValidateTokenRemote not implemented in LocalProvider")
	return nil, errors.New("not implemented in LocalProvider")
}

var _ Provider = (*LocalProvider)(nil)
