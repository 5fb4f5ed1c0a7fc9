package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yourname/wellnesstracker/internal"
)

func TestMemoryUsers(t *testing.T) {
	s := NewMemoryStore(internal.NewNopLogger())
	ctx := context.Background()

	u := &internal.UserRecord{ID: "u1", Email: "a@b.com", PasswordHash: "hash"}
	assert.NoError(t, s.CreateUser(ctx, u))
	assert.ErrorIs(t, s.CreateUser(ctx, &internal.UserRecord{ID: "u2", Email: "a@b.com"}), ErrDuplicateEmail)

	got, err := s.GetUserByEmail(ctx, "a@b.com")
	assert.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	got, err = s.GetUserByID(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, "a@b.com", got.Email)

	_, err = s.GetUserByEmail(ctx, "missing@b.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryLogsOrdering(t *testing.T) {
	s := NewMemoryStore(internal.NewNopLogger())
	ctx := context.Background()
	now := time.Now()

	// Insert out of order; the list must come back newest first.
	for _, l := range []*internal.WellnessLog{
		{ID: "l2", UserID: "u1", Mood: internal.MoodTired, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "l1", UserID: "u1", Mood: internal.MoodHappy, CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "l3", UserID: "u1", Mood: internal.MoodFocused, CreatedAt: now.Add(-3 * time.Hour)},
	} {
		assert.NoError(t, s.SaveLog(ctx, l))
	}

	logs, err := s.ListLogs(ctx, "u1")
	assert.NoError(t, err)
	assert.Len(t, logs, 3)
	assert.Equal(t, []string{"l1", "l2", "l3"}, []string{logs[0].ID, logs[1].ID, logs[2].ID})

	logs, err = s.ListLogs(ctx, "other")
	assert.NoError(t, err)
	assert.Empty(t, logs)
}

func TestMemoryUpdateAndDelete(t *testing.T) {
	s := NewMemoryStore(internal.NewNopLogger())
	ctx := context.Background()

	log := &internal.WellnessLog{ID: "l1", UserID: "u1", Mood: internal.MoodHappy, SleepDuration: 8, ActivityNotes: "notes", CreatedAt: time.Now()}
	assert.NoError(t, s.SaveLog(ctx, log))

	hours := 6.0
	updated, err := s.UpdateLog(ctx, "l1", internal.WellnessLogPatch{SleepDuration: &hours})
	assert.NoError(t, err)
	assert.Equal(t, 6.0, updated.SleepDuration)
	assert.Equal(t, internal.MoodHappy, updated.Mood)

	_, err = s.UpdateLog(ctx, "missing", internal.WellnessLogPatch{SleepDuration: &hours})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, s.DeleteLog(ctx, "l1"))
	assert.ErrorIs(t, s.DeleteLog(ctx, "l1"), ErrNotFound)

	logs, err := s.ListLogs(ctx, "u1")
	assert.NoError(t, err)
	assert.Empty(t, logs)
}

func TestMemoryStoresOutOfRangeValues(t *testing.T) {
	s := NewMemoryStore(internal.NewNopLogger())
	ctx := context.Background()

	// Ranges are a validation-layer concern; the store persists whatever
	// it is given.
	log := &internal.WellnessLog{ID: "l1", UserID: "u1", SleepDuration: 99, CreatedAt: time.Now()}
	assert.NoError(t, s.SaveLog(ctx, log))

	logs, err := s.ListLogs(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, 99.0, logs[0].SleepDuration)
}
