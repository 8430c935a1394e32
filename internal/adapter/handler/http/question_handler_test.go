package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kbpark824/quizr/internal/domain/dto"
	domainErrors "github.com/kbpark824/quizr/internal/domain/errors"
	"github.com/kbpark824/quizr/internal/domain/model"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockQuestionProvisioner is a mock implementation of QuestionProvisioner
type MockQuestionProvisioner struct {
	mock.Mock
}

func (m *MockQuestionProvisioner) GetOrCreate(ctx context.Context, date string) (*model.DailyQuestion, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DailyQuestion), args.Error(1)
}

// MockAttemptTracker is a mock implementation of AttemptTracker
type MockAttemptTracker struct {
	mock.Mock
}

func (m *MockAttemptTracker) EnsureAttempt(ctx context.Context, deviceID, date string, questionID int64) (*model.AttemptRecord, error) {
	args := m.Called(ctx, deviceID, date, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AttemptRecord), args.Error(1)
}

func (m *MockAttemptTracker) MarkCompleted(ctx context.Context, deviceID, date string) (*model.AttemptRecord, error) {
	args := m.Called(ctx, deviceID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AttemptRecord), args.Error(1)
}

func testQuestion() *model.DailyQuestion {
	return &model.DailyQuestion{
		ID:               42,
		Date:             today(),
		QuestionText:     "What is the capital of France?",
		CorrectAnswer:    "Paris",
		IncorrectAnswers: model.StringList{"London", "Berlin", "Madrid"},
	}
}

func performRequest(handler echo.HandlerFunc, method, target, deviceID string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	if deviceID != "" {
		req.Header.Set("X-Device-ID", deviceID)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = handler(c)
	return rec
}

func TestGetDailyQuestion_FreshDevice(t *testing.T) {
	questions := new(MockQuestionProvisioner)
	attempts := new(MockAttemptTracker)

	questions.On("GetOrCreate", mock.Anything, today()).Return(testQuestion(), nil)
	attempts.On("EnsureAttempt", mock.Anything, "device_abc", today(), int64(42)).Return(&model.AttemptRecord{
		DeviceID:     "device_abc",
		Date:         today(),
		HasAttempted: false,
		IsCompleted:  false,
	}, nil)

	handler := NewQuestionHandler(zap.NewNop(), questions, attempts)
	rec := performRequest(handler.GetDailyQuestion, http.MethodGet, "/api/v1/daily-question", "device_abc")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.DailyQuestionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "What is the capital of France?", resp.Question)
	assert.Equal(t, "Paris", resp.CorrectAnswer)
	assert.Len(t, resp.IncorrectAnswers, 3)
	assert.False(t, resp.UserStatus.HasAttempted)
	assert.False(t, resp.UserStatus.IsCompleted)
	assert.True(t, resp.UserStatus.CanAttempt)
}

func TestGetDailyQuestion_MissingDeviceIdentifier(t *testing.T) {
	handler := NewQuestionHandler(zap.NewNop(), new(MockQuestionProvisioner), new(MockAttemptTracker))
	rec := performRequest(handler.GetDailyQuestion, http.MethodGet, "/api/v1/daily-question", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "device identifier required", body["error"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestGetDailyQuestion_ForwardedForFallback(t *testing.T) {
	questions := new(MockQuestionProvisioner)
	attempts := new(MockAttemptTracker)

	questions.On("GetOrCreate", mock.Anything, today()).Return(testQuestion(), nil)
	attempts.On("EnsureAttempt", mock.Anything, "203.0.113.7", today(), int64(42)).Return(&model.AttemptRecord{
		DeviceID: "203.0.113.7",
		Date:     today(),
	}, nil)

	handler := NewQuestionHandler(zap.NewNop(), questions, attempts)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/daily-question", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	rec := httptest.NewRecorder()
	_ = handler.GetDailyQuestion(e.NewContext(req, rec))

	require.Equal(t, http.StatusOK, rec.Code)
	attempts.AssertExpectations(t)
}

func TestGetDailyQuestion_ContentSourceFailure(t *testing.T) {
	questions := new(MockQuestionProvisioner)
	attempts := new(MockAttemptTracker)

	questions.On("GetOrCreate", mock.Anything, today()).
		Return(nil, domainErrors.NewContentSourceError(503, "trivia source unreachable", nil))

	handler := NewQuestionHandler(zap.NewNop(), questions, attempts)
	rec := performRequest(handler.GetDailyQuestion, http.MethodGet, "/api/v1/daily-question", "device_abc")

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "trivia source unavailable", body["error"])

	// No internal detail leaks into the envelope
	assert.NotContains(t, rec.Body.String(), "503")
	attempts.AssertNotCalled(t, "EnsureAttempt", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetDailyQuestion_AfterCompletion(t *testing.T) {
	questions := new(MockQuestionProvisioner)
	attempts := new(MockAttemptTracker)

	questions.On("GetOrCreate", mock.Anything, today()).Return(testQuestion(), nil)
	attempts.On("EnsureAttempt", mock.Anything, "device_abc", today(), int64(42)).Return(&model.AttemptRecord{
		DeviceID:     "device_abc",
		Date:         today(),
		HasAttempted: true,
		IsCompleted:  true,
	}, nil)

	handler := NewQuestionHandler(zap.NewNop(), questions, attempts)
	rec := performRequest(handler.GetDailyQuestion, http.MethodGet, "/api/v1/daily-question", "device_abc")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.DailyQuestionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.UserStatus.IsCompleted)
	assert.False(t, resp.UserStatus.CanAttempt)
}

func TestCompleteAttempt_Success(t *testing.T) {
	attempts := new(MockAttemptTracker)
	attempts.On("MarkCompleted", mock.Anything, "device_abc", today()).Return(&model.AttemptRecord{
		DeviceID:     "device_abc",
		Date:         today(),
		HasAttempted: true,
		IsCompleted:  true,
		UpdatedAt:    time.Now().UTC(),
	}, nil)

	handler := NewQuestionHandler(zap.NewNop(), new(MockQuestionProvisioner), attempts)
	rec := performRequest(handler.CompleteAttempt, http.MethodPost, "/api/v1/daily-question/complete", "device_abc")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.CompleteAttemptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.UserStatus.HasAttempted)
	assert.True(t, resp.UserStatus.IsCompleted)
	assert.False(t, resp.UserStatus.CanAttempt)
}

func TestCompleteAttempt_NoPriorRecord(t *testing.T) {
	attempts := new(MockAttemptTracker)
	attempts.On("MarkCompleted", mock.Anything, "device_abc", today()).
		Return(nil, domainErrors.ErrAttemptNotFound)

	handler := NewQuestionHandler(zap.NewNop(), new(MockQuestionProvisioner), attempts)
	rec := performRequest(handler.CompleteAttempt, http.MethodPost, "/api/v1/daily-question/complete", "device_abc")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "fetch the question first")
	assert.NotEmpty(t, body["timestamp"])
}
