// Package dashboard owns the in-memory log list shown to the user and
// coordinates loads, creates, and deletes against the API backend. State
// is only mutated after an operation completes; overlapping operations are
// last-writer-wins.
package dashboard

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/yourname/wellnesstracker/internal"
	"github.com/yourname/wellnesstracker/internal/client"
)

const (
	loadErrorMessage   = "Failed to load wellness logs"
	createErrorMessage = "Failed to save wellness log"
)

// Stats are derived fresh from the current list on every call.
type Stats struct {
	TotalLogs    int
	AverageSleep float64 // hours, rounded to one decimal
	HappyDays    int
	DaysTracking int
}

type Dashboard struct {
	mu     sync.Mutex
	api    client.Backend
	user   internal.User
	logs   []internal.WellnessLog
	errMsg string
	logger internal.Logger
	now    func() time.Time
}

func New(api client.Backend, user internal.User, logger internal.Logger) *Dashboard {
	return &Dashboard{api: api, user: user, logger: logger, now: time.Now}
}

// Refresh fetches the user's logs and stores them newest first. On failure
// the previous list is kept and a user-visible message is recorded.
func (d *Dashboard) Refresh(ctx context.Context) error {
	logs, err := d.api.ListLogs(ctx, d.user.ID)
	if err != nil {
		d.logger.Errorf("error loading logs: %v", err)
		d.setError(loadErrorMessage)
		return err
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].CreatedAt.After(logs[j].CreatedAt)
	})
	d.mu.Lock()
	defer d.mu.Unlock()
	d.logs = logs
	d.errMsg = ""
	return nil
}

// Create submits a new entry and prepends it on success. The list stays
// sorted because creation timestamps only move forward. Failures are
// propagated so the submitting form keeps its input for correction.
func (d *Dashboard) Create(ctx context.Context, form internal.WellnessLogForm) (*internal.WellnessLog, error) {
	log, err := d.api.CreateLog(ctx, d.user.ID, form)
	if err != nil {
		d.logger.Errorf("error creating log: %v", err)
		d.setError(createErrorMessage)
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.logs = append([]internal.WellnessLog{*log}, d.logs...)
	d.errMsg = ""
	return log, nil
}

// Delete removes an entry remotely, then locally by id. On failure local
// state is left untouched and the error is propagated after logging.
func (d *Dashboard) Delete(ctx context.Context, logID string) error {
	if err := d.api.DeleteLog(ctx, logID); err != nil {
		d.logger.Errorf("error deleting log: %v", err)
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, l := range d.logs {
		if l.ID == logID {
			d.logs = append(d.logs[:i], d.logs[i+1:]...)
			break
		}
	}
	return nil
}

func (d *Dashboard) Logs() []internal.WellnessLog {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]internal.WellnessLog, len(d.logs))
	copy(out, d.logs)
	return out
}

// Err returns the current user-visible error message, empty when the last
// operation succeeded.
func (d *Dashboard) Err() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.errMsg
}

func (d *Dashboard) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.logs) == 0 {
		return Stats{}
	}
	var totalSleep float64
	happy := 0
	for _, l := range d.logs {
		totalSleep += l.SleepDuration
		if l.Mood == internal.MoodHappy {
			happy++
		}
	}
	// Logs are newest first, so the oldest entry sits at the end.
	oldest := d.logs[len(d.logs)-1].CreatedAt
	days := int(math.Ceil(d.now().Sub(oldest).Hours() / 24))
	return Stats{
		TotalLogs:    len(d.logs),
		AverageSleep: math.Round(totalSleep/float64(len(d.logs))*10) / 10,
		HappyDays:    happy,
		DaysTracking: days,
	}
}

func (d *Dashboard) setError(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.errMsg = msg
}
