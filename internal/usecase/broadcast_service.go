package usecase

import (
	"context"

	"github.com/kbpark824/quizr/internal/domain/provider"
	"github.com/kbpark824/quizr/internal/domain/repository"
	"go.uber.org/zap"
)

const broadcastTitle = "Today's Trivia Question"

// BroadcastReport summarizes a daily push broadcast run.
type BroadcastReport struct {
	Date      string `json:"date"`
	Attempted int    `json:"attempted"`
	Delivered int    `json:"delivered"`
	Failed    int    `json:"failed"`
}

// BroadcastService sends the provisioned daily question to every registered
// device through the push collaborator.
type BroadcastService struct {
	questionService *QuestionService
	tokenRepo       repository.DeviceTokenRepository
	sender          provider.PushSender
	logger          *zap.Logger
}

// NewBroadcastService creates a new broadcast service
func NewBroadcastService(
	questionService *QuestionService,
	tokenRepo repository.DeviceTokenRepository,
	sender provider.PushSender,
	logger *zap.Logger,
) *BroadcastService {
	return &BroadcastService{
		questionService: questionService,
		tokenRepo:       tokenRepo,
		sender:          sender,
		logger:          logger,
	}
}

// SendDailyQuestion provisions the question for the date (reusing the same
// idempotent path as the HTTP endpoint) and pushes its text to all tokens.
func (s *BroadcastService) SendDailyQuestion(ctx context.Context, date string) (*BroadcastReport, error) {
	question, err := s.questionService.GetOrCreate(ctx, date)
	if err != nil {
		return nil, err
	}

	tokens, err := s.tokenRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	report := &BroadcastReport{Date: date, Attempted: len(tokens)}
	if len(tokens) == 0 {
		s.logger.Info("No device tokens registered, skipping broadcast",
			zap.String("date", date))
		return report, nil
	}

	messages := make([]provider.PushMessage, 0, len(tokens))
	for _, token := range tokens {
		messages = append(messages, provider.PushMessage{
			To:    token.Token,
			Title: broadcastTitle,
			Body:  question.QuestionText,
		})
	}

	results, err := s.sender.SendMessages(ctx, messages)
	if err != nil {
		return nil, err
	}

	for i, result := range results {
		if result.Status == "ok" {
			report.Delivered++
			continue
		}
		report.Failed++
		s.logger.Warn("Push delivery failed for token",
			zap.String("device_id", tokens[i].DeviceID),
			zap.String("status", result.Status),
			zap.String("message", result.Message))
	}

	s.logger.Info("Daily question broadcast finished",
		zap.String("date", date),
		zap.Int("attempted", report.Attempted),
		zap.Int("delivered", report.Delivered),
		zap.Int("failed", report.Failed))

	return report, nil
}
