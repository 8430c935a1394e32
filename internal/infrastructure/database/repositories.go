package database

import (
	"github.com/kbpark824/quizr/internal/adapter/repository"
	domainRepo "github.com/kbpark824/quizr/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	Question    domainRepo.QuestionRepository
	Attempt     domainRepo.AttemptRepository
	DeviceToken domainRepo.DeviceTokenRepository
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		Question:    repository.NewQuestionRepository(db, logger),
		Attempt:     repository.NewAttemptRepository(db, logger),
		DeviceToken: repository.NewDeviceTokenRepository(db, logger),
	}
}
