package client

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yourname/wellnesstracker/internal"
)

const (
	demoPassword = "password123"
	demoUserID   = "demo_user"

	defaultAuthLatency = 500 * time.Millisecond
	defaultLogLatency  = 300 * time.Millisecond
)

type fallbackUser struct {
	ID       string
	Email    string
	Password string
}

// Fallback is the in-memory stand-in for a real backend. State lives for
// the process lifetime only and starts with two seeded demo entries, so a
// fresh session always has something to show. Each operation waits an
// artificial latency to emulate the network for loading-state testing.
type Fallback struct {
	mu          sync.RWMutex
	users       map[string]fallbackUser // keyed by email
	logs        []*internal.WellnessLog // newest first
	authLatency time.Duration
	logLatency  time.Duration
	logger      internal.Logger
}

func NewFallback(logger internal.Logger) *Fallback {
	return NewFallbackWithLatency(defaultAuthLatency, defaultLogLatency, logger)
}

func NewFallbackWithLatency(authLatency, logLatency time.Duration, logger internal.Logger) *Fallback {
	return &Fallback{
		users:       make(map[string]fallbackUser),
		logs:        seedLogs(),
		authLatency: authLatency,
		logLatency:  logLatency,
		logger:      logger,
	}
}

func seedLogs() []*internal.WellnessLog {
	return []*internal.WellnessLog{
		{
			ID:            "demo_log_1",
			UserID:        demoUserID,
			Mood:          internal.MoodHappy,
			SleepDuration: 8,
			ActivityNotes: "Great day! Had an excellent workout and felt energized throughout the day.",
			CreatedAt:     time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:            "demo_log_2",
			UserID:        demoUserID,
			Mood:          internal.MoodFocused,
			SleepDuration: 7.5,
			ActivityNotes: "Deep work session in the morning. Completed important project milestones.",
			CreatedAt:     time.Date(2024, 1, 14, 9, 15, 0, 0, time.UTC),
		},
	}
}

// Reset restores the seeded state; used for test isolation.
func (f *Fallback) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = make(map[string]fallbackUser)
	f.logs = seedLogs()
}

func (f *Fallback) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Login accepts any email with an '@' together with the fixed demo
// password, and returns a fresh opaque token each call.
func (f *Fallback) Login(ctx context.Context, data internal.LoginData) (*internal.AuthResponse, error) {
	if err := f.wait(ctx, f.authLatency); err != nil {
		return nil, err
	}
	if !strings.Contains(data.Email, "@") || data.Password != demoPassword {
		f.logger.Warnf("fallback login rejected for %q", data.Email)
		return nil, fmt.Errorf("%w: use any email with password %q", ErrInvalidCredentials, demoPassword)
	}
	return &internal.AuthResponse{
		Token: generateToken(),
		User:  internal.User{ID: demoUserID, Email: data.Email},
	}, nil
}

func (f *Fallback) Signup(ctx context.Context, data internal.SignupData) (*internal.AuthResponse, error) {
	if err := f.wait(ctx, f.authLatency); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[data.Email]; exists {
		return nil, ErrEmailTaken
	}
	u := fallbackUser{ID: generateID(), Email: data.Email, Password: data.Password}
	f.users[data.Email] = u
	return &internal.AuthResponse{
		Token: generateToken(),
		User:  internal.User{ID: u.ID, Email: u.Email},
	}, nil
}

// ListLogs returns the given user's logs plus the seeded demo user's, so
// every fresh session sees the two demonstration entries.
func (f *Fallback) ListLogs(ctx context.Context, userID string) ([]internal.WellnessLog, error) {
	if err := f.wait(ctx, f.logLatency); err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	logs := make([]internal.WellnessLog, 0, len(f.logs))
	for _, l := range f.logs {
		if l.UserID == userID || l.UserID == demoUserID {
			logs = append(logs, *l)
		}
	}
	return logs, nil
}

func (f *Fallback) CreateLog(ctx context.Context, userID string, form internal.WellnessLogForm) (*internal.WellnessLog, error) {
	if err := f.wait(ctx, f.logLatency); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	log := &internal.WellnessLog{
		ID:            generateID(),
		UserID:        userID,
		Mood:          form.Mood,
		SleepDuration: form.SleepDuration,
		ActivityNotes: form.ActivityNotes,
		CreatedAt:     time.Now().UTC(),
	}
	f.logs = append([]*internal.WellnessLog{log}, f.logs...)
	out := *log
	return &out, nil
}

func (f *Fallback) UpdateLog(ctx context.Context, logID string, patch internal.WellnessLogPatch) (*internal.WellnessLog, error) {
	if err := f.wait(ctx, f.logLatency); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.logs {
		if l.ID == logID {
			patch.Apply(l)
			out := *l
			return &out, nil
		}
	}
	return nil, ErrLogNotFound
}

func (f *Fallback) DeleteLog(ctx context.Context, logID string) error {
	if err := f.wait(ctx, f.logLatency); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, l := range f.logs {
		if l.ID == logID {
			f.logs = append(f.logs[:i], f.logs[i+1:]...)
			return nil
		}
	}
	return ErrLogNotFound
}

func generateID() string    { return "fallback_" + uuid.NewString() }
func generateToken() string { return "fallback_jwt_" + uuid.NewString() }

var _ Backend = (*Fallback)(nil)
