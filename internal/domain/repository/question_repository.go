package repository

import (
	"context"

	"github.com/kbpark824/quizr/internal/domain/model"
)

// QuestionRepository persists daily questions. Create must surface a
// uniqueness conflict on date as errors.ErrDuplicateQuestion so the
// provisioner can recover by re-reading the winner's row.
type QuestionRepository interface {
	GetByDate(ctx context.Context, date string) (*model.DailyQuestion, error)
	Create(ctx context.Context, question *model.DailyQuestion) error
}
