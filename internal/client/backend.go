// Package client talks to the wellness API. A backend is picked once at
// construction: the remote HTTP implementation when a real base URL is
// configured, otherwise an in-memory fallback that honors the same
// contract, so callers never observe which one served a request.
package client

import (
	"context"
	"errors"

	"github.com/yourname/wellnesstracker/internal"
	"github.com/yourname/wellnesstracker/internal/config"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrLogNotFound        = errors.New("log not found")
)

type Backend interface {
	Login(ctx context.Context, data internal.LoginData) (*internal.AuthResponse, error)
	Signup(ctx context.Context, data internal.SignupData) (*internal.AuthResponse, error)
	ListLogs(ctx context.Context, userID string) ([]internal.WellnessLog, error)
	CreateLog(ctx context.Context, userID string, form internal.WellnessLogForm) (*internal.WellnessLog, error)
	UpdateLog(ctx context.Context, logID string, patch internal.WellnessLogPatch) (*internal.WellnessLog, error)
	DeleteLog(ctx context.Context, logID string) error
}

// TokenSource supplies the bearer token attached to protected requests.
type TokenSource interface {
	Token() string
}

// New selects the backend from configuration. The choice is made once;
// it is not re-checked per call.
func New(cfg *config.Config, tokens TokenSource, logger internal.Logger) Backend {
	if cfg.RemoteConfigured() {
		return NewRemote(cfg.APIBaseURL, tokens, logger)
	}
	logger.Warnf("no remote API configured, using in-memory fallback backend")
	return NewFallback(logger)
}
