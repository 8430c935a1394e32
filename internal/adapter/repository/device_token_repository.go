package repository

import (
	"context"
	"fmt"

	"github.com/kbpark824/quizr/internal/domain/model"
	domainRepo "github.com/kbpark824/quizr/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type deviceTokenRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewDeviceTokenRepository creates a new device token repository
func NewDeviceTokenRepository(db *gorm.DB, logger *zap.Logger) domainRepo.DeviceTokenRepository {
	return &deviceTokenRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert inserts the device's push token, replacing any previous one for the
// same device.
func (r *deviceTokenRepository) Upsert(ctx context.Context, token *model.DeviceToken) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"token", "platform", "updated_at"}),
		}).
		Create(token).Error

	if err != nil {
		r.logger.Error("Failed to upsert device token",
			zap.String("device_id", token.DeviceID),
			zap.Error(err))
		return fmt.Errorf("failed to upsert device token: %w", err)
	}

	return nil
}

// ListAll returns every registered push destination
func (r *deviceTokenRepository) ListAll(ctx context.Context) ([]model.DeviceToken, error) {
	var tokens []model.DeviceToken

	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&tokens).Error

	if err != nil {
		r.logger.Error("Failed to list device tokens", zap.Error(err))
		return nil, fmt.Errorf("failed to list device tokens: %w", err)
	}

	return tokens, nil
}
