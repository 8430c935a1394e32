package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/kbpark824/quizr/internal/domain/errors"
	"github.com/kbpark824/quizr/internal/domain/model"
	"github.com/kbpark824/quizr/internal/domain/repository"
	"go.uber.org/zap"
)

// AttemptService manages the per-device, per-day attempt record lifecycle.
type AttemptService struct {
	attemptRepo repository.AttemptRepository
	logger      *zap.Logger
}

// NewAttemptService creates a new attempt tracking service
func NewAttemptService(attemptRepo repository.AttemptRepository, logger *zap.Logger) *AttemptService {
	return &AttemptService{
		attemptRepo: attemptRepo,
		logger:      logger,
	}
}

// EnsureAttempt returns the device's attempt record for the date, creating a
// fresh one when none exists. Duplicate concurrent requests from the same
// device resolve through the conflict-and-reread path, so at most one row
// ever exists per (device, date).
func (s *AttemptService) EnsureAttempt(ctx context.Context, deviceID, date string, questionID int64) (*model.AttemptRecord, error) {
	record, err := s.attemptRepo.GetByDeviceAndDate(ctx, deviceID, date)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, domainErrors.ErrAttemptNotFound) {
		return nil, err
	}

	record = &model.AttemptRecord{
		DeviceID:        deviceID,
		Date:            date,
		DailyQuestionID: questionID,
		HasAttempted:    false,
		IsCompleted:     false,
	}

	err = s.attemptRepo.Create(ctx, record)
	if err == nil {
		return record, nil
	}

	if errors.Is(err, domainErrors.ErrDuplicateAttempt) {
		s.logger.Info("Lost attempt record creation race, re-reading",
			zap.String("device_id", deviceID),
			zap.String("date", date))
		return s.attemptRepo.GetByDeviceAndDate(ctx, deviceID, date)
	}

	return nil, err
}

// MarkCompleted transitions the device's record for the date to completed.
// The transition is one-way and idempotent; a repeat call re-asserts the
// same values. Returns ErrAttemptNotFound when the device never fetched the
// question for that date.
func (s *AttemptService) MarkCompleted(ctx context.Context, deviceID, date string) (*model.AttemptRecord, error) {
	record, err := s.attemptRepo.MarkCompleted(ctx, deviceID, date)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Marked attempt completed",
		zap.String("device_id", deviceID),
		zap.String("date", date))

	return record, nil
}
