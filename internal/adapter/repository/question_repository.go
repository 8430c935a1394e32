package repository

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/kbpark824/quizr/internal/domain/errors"
	"github.com/kbpark824/quizr/internal/domain/model"
	domainRepo "github.com/kbpark824/quizr/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type questionRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewQuestionRepository creates a new daily question repository
func NewQuestionRepository(db *gorm.DB, logger *zap.Logger) domainRepo.QuestionRepository {
	return &questionRepository{
		db:     db,
		logger: logger,
	}
}

// GetByDate retrieves the daily question for a calendar date
func (r *questionRepository) GetByDate(ctx context.Context, date string) (*model.DailyQuestion, error) {
	var question model.DailyQuestion

	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		First(&question).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrQuestionNotFound
		}
		r.logger.Error("Failed to get daily question by date",
			zap.String("date", date),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get daily question: %w", err)
	}

	return &question, nil
}

// Create inserts the daily question for its date. The unique index on date
// makes this the race arbiter: the losing concurrent insert comes back as
// ErrDuplicateQuestion and the caller re-reads the winner.
func (r *questionRepository) Create(ctx context.Context, question *model.DailyQuestion) error {
	err := r.db.WithContext(ctx).Create(question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainErrors.ErrDuplicateQuestion
		}
		r.logger.Error("Failed to create daily question",
			zap.String("date", question.Date),
			zap.Error(err))
		return fmt.Errorf("failed to create daily question: %w", err)
	}

	return nil
}
