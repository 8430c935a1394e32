package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/kbpark824/quizr/internal/domain/dto"
	domainErrors "github.com/kbpark824/quizr/internal/domain/errors"
	"github.com/kbpark824/quizr/internal/domain/model"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// QuestionProvisioner is the slice of the question service the handler needs.
type QuestionProvisioner interface {
	GetOrCreate(ctx context.Context, date string) (*model.DailyQuestion, error)
}

// AttemptTracker is the slice of the attempt service the handler needs.
type AttemptTracker interface {
	EnsureAttempt(ctx context.Context, deviceID, date string, questionID int64) (*model.AttemptRecord, error)
	MarkCompleted(ctx context.Context, deviceID, date string) (*model.AttemptRecord, error)
}

// QuestionHandler serves the daily question endpoints
type QuestionHandler struct {
	logger    *zap.Logger
	questions QuestionProvisioner
	attempts  AttemptTracker
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(logger *zap.Logger, questions QuestionProvisioner, attempts AttemptTracker) *QuestionHandler {
	return &QuestionHandler{
		logger:    logger,
		questions: questions,
		attempts:  attempts,
	}
}

// GetDailyQuestion handles GET /api/v1/daily-question
func (h *QuestionHandler) GetDailyQuestion(c echo.Context) error {
	deviceID := DeviceID(c)
	if deviceID == "" {
		return errorResponse(c, http.StatusBadRequest, "device identifier required")
	}

	date := today()
	ctx := c.Request().Context()

	question, err := h.questions.GetOrCreate(ctx, date)
	if err != nil {
		return h.mapProvisionError(c, err)
	}

	record, err := h.attempts.EnsureAttempt(ctx, deviceID, date, question.ID)
	if err != nil {
		h.logger.Error("Failed to ensure attempt record",
			zap.String("device_id", deviceID),
			zap.String("date", date),
			zap.Error(err))
		return errorResponse(c, http.StatusInternalServerError, "failed to track attempt")
	}

	return c.JSON(http.StatusOK, dto.DailyQuestionResponse{
		ID:               question.ID,
		Question:         question.QuestionText,
		CorrectAnswer:    question.CorrectAnswer,
		IncorrectAnswers: question.IncorrectAnswers,
		UserStatus: dto.UserStatus{
			HasAttempted: record.HasAttempted,
			IsCompleted:  record.IsCompleted,
			CanAttempt:   !record.IsCompleted,
		},
	})
}

// CompleteAttempt handles POST /api/v1/daily-question/complete
func (h *QuestionHandler) CompleteAttempt(c echo.Context) error {
	deviceID := DeviceID(c)
	if deviceID == "" {
		return errorResponse(c, http.StatusBadRequest, "device identifier required")
	}

	date := today()

	record, err := h.attempts.MarkCompleted(c.Request().Context(), deviceID, date)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAttemptNotFound) {
			return errorResponse(c, http.StatusNotFound, "no attempt found for today, fetch the question first")
		}
		h.logger.Error("Failed to mark attempt completed",
			zap.String("device_id", deviceID),
			zap.String("date", date),
			zap.Error(err))
		return errorResponse(c, http.StatusInternalServerError, "failed to complete attempt")
	}

	return c.JSON(http.StatusOK, dto.CompleteAttemptResponse{
		Success: true,
		Message: "attempt completed",
		UserStatus: dto.UserStatus{
			HasAttempted: record.HasAttempted,
			IsCompleted:  record.IsCompleted,
			CanAttempt:   !record.IsCompleted,
		},
	})
}

func (h *QuestionHandler) mapProvisionError(c echo.Context, err error) error {
	var contentErr *domainErrors.ContentSourceError
	var validationErr *domainErrors.ValidationError

	switch {
	case errors.As(err, &contentErr):
		h.logger.Error("Content source failure", zap.Error(err))
		return errorResponse(c, http.StatusBadGateway, "trivia source unavailable")
	case errors.As(err, &validationErr):
		h.logger.Error("Content validation failure", zap.Error(err))
		return errorResponse(c, http.StatusBadGateway, "trivia source returned unusable content")
	default:
		h.logger.Error("Failed to provision daily question", zap.Error(err))
		return errorResponse(c, http.StatusInternalServerError, "failed to load daily question")
	}
}
