package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yourname/wellnesstracker/internal"
	"github.com/yourname/wellnesstracker/internal/store"
)

func ValidateWellnessLogRequest(form *internal.WellnessLogForm) error {
	return validate.Struct(form)
}

func CreateWellnessLog(ctx context.Context, logs store.WellnessLogRepository, user *internal.User, form internal.WellnessLogForm) (*internal.WellnessLog, error) {
	log := &internal.WellnessLog{
		ID:            uuid.NewString(),
		UserID:        user.ID,
		Mood:          form.Mood,
		SleepDuration: form.SleepDuration,
		ActivityNotes: form.ActivityNotes,
		CreatedAt:     time.Now().UTC(),
	}
	if err := logs.SaveLog(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func UpdateWellnessLog(ctx context.Context, logs store.WellnessLogRepository, id string, patch internal.WellnessLogPatch) (*internal.WellnessLog, error) {
	return logs.UpdateLog(ctx, id, patch)
}

func DeleteWellnessLog(ctx context.Context, logs store.WellnessLogRepository, id string) error {
	return logs.DeleteLog(ctx, id)
}
