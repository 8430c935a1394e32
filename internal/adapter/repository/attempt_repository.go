package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainErrors "github.com/kbpark824/quizr/internal/domain/errors"
	"github.com/kbpark824/quizr/internal/domain/model"
	domainRepo "github.com/kbpark824/quizr/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type attemptRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewAttemptRepository creates a new attempt record repository
func NewAttemptRepository(db *gorm.DB, logger *zap.Logger) domainRepo.AttemptRepository {
	return &attemptRepository{
		db:     db,
		logger: logger,
	}
}

// GetByDeviceAndDate retrieves the attempt record for a device on a date
func (r *attemptRepository) GetByDeviceAndDate(ctx context.Context, deviceID, date string) (*model.AttemptRecord, error) {
	var record model.AttemptRecord

	err := r.db.WithContext(ctx).
		Where("device_id = ? AND date = ?", deviceID, date).
		First(&record).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrAttemptNotFound
		}
		r.logger.Error("Failed to get attempt record",
			zap.String("device_id", deviceID),
			zap.String("date", date),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get attempt record: %w", err)
	}

	return &record, nil
}

// Create inserts a fresh attempt record. The composite unique index on
// (device_id, date) turns a duplicate concurrent insert into
// ErrDuplicateAttempt for the caller's re-read path.
func (r *attemptRepository) Create(ctx context.Context, record *model.AttemptRecord) error {
	err := r.db.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainErrors.ErrDuplicateAttempt
		}
		r.logger.Error("Failed to create attempt record",
			zap.String("device_id", record.DeviceID),
			zap.String("date", record.Date),
			zap.Error(err))
		return fmt.Errorf("failed to create attempt record: %w", err)
	}

	return nil
}

// MarkCompleted performs the one-way completion transition. Repeat calls
// re-assert the same values, so the transition is idempotent.
func (r *attemptRepository) MarkCompleted(ctx context.Context, deviceID, date string) (*model.AttemptRecord, error) {
	var record model.AttemptRecord

	err := r.db.WithContext(ctx).
		Where("device_id = ? AND date = ?", deviceID, date).
		First(&record).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrAttemptNotFound
		}
		return nil, fmt.Errorf("failed to check attempt record: %w", err)
	}

	updates := map[string]interface{}{
		"has_attempted": true,
		"is_completed":  true,
		"updated_at":    time.Now().UTC(),
	}

	err = r.db.WithContext(ctx).
		Model(&record).
		Updates(updates).Error

	if err != nil {
		r.logger.Error("Failed to mark attempt completed",
			zap.String("device_id", deviceID),
			zap.String("date", date),
			zap.Error(err))
		return nil, fmt.Errorf("failed to mark attempt completed: %w", err)
	}

	record.HasAttempted = true
	record.IsCompleted = true
	return &record, nil
}
