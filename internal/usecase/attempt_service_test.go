package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/kbpark824/quizr/internal/domain/errors"
	"github.com/kbpark824/quizr/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockAttemptRepository is a mock implementation of repository.AttemptRepository
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) GetByDeviceAndDate(ctx context.Context, deviceID, date string) (*model.AttemptRecord, error) {
	args := m.Called(ctx, deviceID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AttemptRecord), args.Error(1)
}

func (m *MockAttemptRepository) Create(ctx context.Context, record *model.AttemptRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAttemptRepository) MarkCompleted(ctx context.Context, deviceID, date string) (*model.AttemptRecord, error) {
	args := m.Called(ctx, deviceID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AttemptRecord), args.Error(1)
}

func TestAttemptServiceEnsureAttempt_ReturnsExistingRecord(t *testing.T) {
	repo := new(MockAttemptRepository)

	existing := &model.AttemptRecord{
		ID:           7,
		DeviceID:     "device_abc",
		Date:         "2025-03-01",
		HasAttempted: true,
		IsCompleted:  false,
	}
	repo.On("GetByDeviceAndDate", mock.Anything, "device_abc", "2025-03-01").Return(existing, nil)

	service := NewAttemptService(repo, zap.NewNop())

	record, err := service.EnsureAttempt(context.Background(), "device_abc", "2025-03-01", 42)
	require.NoError(t, err)
	assert.Equal(t, int64(7), record.ID)
	assert.True(t, record.HasAttempted)

	// No duplicate row is ever created
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAttemptServiceEnsureAttempt_CreatesWithDefaults(t *testing.T) {
	repo := new(MockAttemptRepository)

	repo.On("GetByDeviceAndDate", mock.Anything, "device_abc", "2025-03-01").Return(nil, domainErrors.ErrAttemptNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *model.AttemptRecord) bool {
		return r.DeviceID == "device_abc" &&
			r.Date == "2025-03-01" &&
			r.DailyQuestionID == 42 &&
			!r.HasAttempted &&
			!r.IsCompleted
	})).Return(nil)

	service := NewAttemptService(repo, zap.NewNop())

	record, err := service.EnsureAttempt(context.Background(), "device_abc", "2025-03-01", 42)
	require.NoError(t, err)
	assert.False(t, record.HasAttempted)
	assert.False(t, record.IsCompleted)

	repo.AssertExpectations(t)
}

func TestAttemptServiceEnsureAttempt_ConflictReread(t *testing.T) {
	repo := new(MockAttemptRepository)

	winner := &model.AttemptRecord{
		ID:       9,
		DeviceID: "device_abc",
		Date:     "2025-03-01",
	}

	// Duplicate concurrent requests from the same device race on the insert
	repo.On("GetByDeviceAndDate", mock.Anything, "device_abc", "2025-03-01").Return(nil, domainErrors.ErrAttemptNotFound).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(domainErrors.ErrDuplicateAttempt)
	repo.On("GetByDeviceAndDate", mock.Anything, "device_abc", "2025-03-01").Return(winner, nil).Once()

	service := NewAttemptService(repo, zap.NewNop())

	record, err := service.EnsureAttempt(context.Background(), "device_abc", "2025-03-01", 42)
	require.NoError(t, err)
	assert.Equal(t, int64(9), record.ID)

	repo.AssertExpectations(t)
}

func TestAttemptServiceEnsureAttempt_PersistenceFailureSurfaces(t *testing.T) {
	repo := new(MockAttemptRepository)

	persistErr := errors.New("failed to get attempt record: connection reset")
	repo.On("GetByDeviceAndDate", mock.Anything, "device_abc", "2025-03-01").Return(nil, persistErr)

	service := NewAttemptService(repo, zap.NewNop())

	_, err := service.EnsureAttempt(context.Background(), "device_abc", "2025-03-01", 42)
	require.ErrorIs(t, err, persistErr)
}

func TestAttemptServiceMarkCompleted_OneWayTransition(t *testing.T) {
	repo := new(MockAttemptRepository)

	completed := &model.AttemptRecord{
		DeviceID:     "device_abc",
		Date:         "2025-03-01",
		HasAttempted: true,
		IsCompleted:  true,
	}
	repo.On("MarkCompleted", mock.Anything, "device_abc", "2025-03-01").Return(completed, nil)

	service := NewAttemptService(repo, zap.NewNop())

	// Repeat calls re-assert the same terminal state
	for i := 0; i < 2; i++ {
		record, err := service.MarkCompleted(context.Background(), "device_abc", "2025-03-01")
		require.NoError(t, err)
		assert.True(t, record.HasAttempted)
		assert.True(t, record.IsCompleted)
	}
}

func TestAttemptServiceMarkCompleted_NotFound(t *testing.T) {
	repo := new(MockAttemptRepository)

	repo.On("MarkCompleted", mock.Anything, "device_xyz", "2025-03-01").Return(nil, domainErrors.ErrAttemptNotFound)

	service := NewAttemptService(repo, zap.NewNop())

	_, err := service.MarkCompleted(context.Background(), "device_xyz", "2025-03-01")
	require.ErrorIs(t, err, domainErrors.ErrAttemptNotFound)
}
