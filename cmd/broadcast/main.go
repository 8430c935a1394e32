// Broadcast provisions today's question and pushes it to every registered
// device. Run once per day by the scheduler of your choice.
package main

import (
	"context"
	"log"
	"time"

	"github.com/kbpark824/quizr/internal/config"
	"github.com/kbpark824/quizr/internal/infrastructure/database"
	"github.com/kbpark824/quizr/internal/infrastructure/provider/expo"
	"github.com/kbpark824/quizr/internal/infrastructure/provider/opentdb"
	"github.com/kbpark824/quizr/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.NewConnection(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, logger); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if err := database.Migrate(db, logger); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	repos := database.NewRepositories(db, logger)

	source := opentdb.NewClient(cfg.Service.Trivia.BaseURL, nil, logger)
	sender := expo.NewClient(cfg.Service.Push.BaseURL, cfg.Service.Push.AccessToken, nil, logger)

	questionService := usecase.NewQuestionService(repos.Question, source, nil, logger)
	broadcastService := usecase.NewBroadcastService(questionService, repos.DeviceToken, sender, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	date := time.Now().UTC().Format("2006-01-02")
	report, err := broadcastService.SendDailyQuestion(ctx, date)
	if err != nil {
		logger.Fatal("Broadcast failed", zap.String("date", date), zap.Error(err))
	}

	logger.Info("Broadcast complete",
		zap.String("date", report.Date),
		zap.Int("attempted", report.Attempted),
		zap.Int("delivered", report.Delivered),
		zap.Int("failed", report.Failed))
}
