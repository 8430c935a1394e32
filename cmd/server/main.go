package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbpark824/quizr/internal/config"
	"github.com/kbpark824/quizr/internal/infrastructure/database"
	httpServer "github.com/kbpark824/quizr/internal/infrastructure/http"
	"github.com/kbpark824/quizr/internal/infrastructure/messaging"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database connection
	db, err := database.NewConnection(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, logger); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	// Run database migrations
	if err := database.Migrate(db, logger); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize repositories
	repos := database.NewRepositories(db, logger)

	// Question-created events are optional; skip when Redis is not configured
	var publisher messaging.QuestionPublisher
	if cfg.Service.Redis.Addr != "" {
		publisher = messaging.NewRedisQuestionPublisher(&cfg.Service.Redis)
		defer func() {
			if err := publisher.Close(); err != nil {
				logger.Error("Failed to close event publisher", zap.Error(err))
			}
		}()
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize server
	srv := httpServer.NewServer(cfg, logger, repos, publisher)

	// Start server
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	logger.Info("Server shut down successfully")
}
