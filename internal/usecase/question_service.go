package usecase

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/kbpark824/quizr/internal/domain/errors"
	"github.com/kbpark824/quizr/internal/domain/model"
	"github.com/kbpark824/quizr/internal/domain/provider"
	"github.com/kbpark824/quizr/internal/domain/repository"
	"github.com/kbpark824/quizr/internal/infrastructure/messaging"
	"go.uber.org/zap"
)

// QuestionService provisions the authoritative daily question. There is no
// lock anywhere in this path: the unique index on date arbitrates concurrent
// first-requesters, and the loser recovers by re-reading the winner's row.
type QuestionService struct {
	questionRepo repository.QuestionRepository
	source       provider.QuestionSource
	publisher    messaging.QuestionPublisher
	logger       *zap.Logger
}

// NewQuestionService creates a new question provisioning service. The
// publisher may be nil when event publication is disabled.
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	source provider.QuestionSource,
	publisher messaging.QuestionPublisher,
	logger *zap.Logger,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		source:       source,
		publisher:    publisher,
		logger:       logger,
	}
}

// GetOrCreate returns the daily question for the given UTC calendar date,
// creating it from the content source when no row exists yet. Safe under
// concurrent callers: exactly one creation succeeds per date.
func (s *QuestionService) GetOrCreate(ctx context.Context, date string) (*model.DailyQuestion, error) {
	question, err := s.questionRepo.GetByDate(ctx, date)
	if err == nil {
		return question, nil
	}
	if !errors.Is(err, domainErrors.ErrQuestionNotFound) {
		return nil, err
	}

	item, err := s.source.FetchQuestion(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to provision daily question: %w", err)
	}

	question = &model.DailyQuestion{
		Date:             date,
		QuestionText:     item.Question,
		CorrectAnswer:    item.CorrectAnswer,
		IncorrectAnswers: model.StringList(item.IncorrectAnswers),
	}

	err = s.questionRepo.Create(ctx, question)
	if err == nil {
		s.logger.Info("Created daily question",
			zap.String("date", date),
			zap.Int64("question_id", question.ID))
		s.publishCreated(ctx, question)
		return question, nil
	}

	if errors.Is(err, domainErrors.ErrDuplicateQuestion) {
		// A concurrent caller won the insert race. Return its row.
		s.logger.Info("Lost daily question creation race, re-reading winner",
			zap.String("date", date))
		return s.questionRepo.GetByDate(ctx, date)
	}

	return nil, err
}

// publishCreated is best-effort: a failed event never fails provisioning.
func (s *QuestionService) publishCreated(ctx context.Context, question *model.DailyQuestion) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishCreated(ctx, question); err != nil {
		s.logger.Warn("Failed to publish question-created event",
			zap.String("date", question.Date),
			zap.Error(err))
	}
}
