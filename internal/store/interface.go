package store

import (
	"context"
	"errors"

	"github.com/yourname/wellnesstracker/internal"
)

var (
	ErrNotFound       = errors.New("store: not found")
	ErrDuplicateEmail = errors.New("store: email already registered")
)

type UserRepository interface {
	CreateUser(ctx context.Context, u *internal.UserRecord) error
	GetUserByEmail(ctx context.Context, email string) (*internal.UserRecord, error)
	GetUserByID(ctx context.Context, id string) (*internal.UserRecord, error)
}

// WellnessLogRepository persists log entries. Field ranges are enforced at
// the validation layer only; the repository stores what it is given.
type WellnessLogRepository interface {
	SaveLog(ctx context.Context, log *internal.WellnessLog) error
	ListLogs(ctx context.Context, userID string) ([]internal.WellnessLog, error)
	UpdateLog(ctx context.Context, id string, patch internal.WellnessLogPatch) (*internal.WellnessLog, error)
	DeleteLog(ctx context.Context, id string) error
}
