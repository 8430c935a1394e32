package repository

import (
	"context"

	"github.com/kbpark824/quizr/internal/domain/model"
)

// AttemptRepository persists per-device, per-day attempt records. Create
// surfaces a uniqueness conflict on (device_id, date) as
// errors.ErrDuplicateAttempt; MarkCompleted surfaces a missing row as
// errors.ErrAttemptNotFound.
type AttemptRepository interface {
	GetByDeviceAndDate(ctx context.Context, deviceID, date string) (*model.AttemptRecord, error)
	Create(ctx context.Context, record *model.AttemptRecord) error
	MarkCompleted(ctx context.Context, deviceID, date string) (*model.AttemptRecord, error)
}
