package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handlers "github.com/kbpark824/quizr/internal/adapter/handler/http"
	"github.com/kbpark824/quizr/internal/config"
	"github.com/kbpark824/quizr/internal/infrastructure/database"
	"github.com/kbpark824/quizr/internal/infrastructure/messaging"
	"github.com/kbpark824/quizr/internal/infrastructure/provider/opentdb"
	"github.com/kbpark824/quizr/internal/middleware/ratelimit"
	"github.com/kbpark824/quizr/internal/usecase"
)

type Server struct {
	config    *config.Config
	logger    *zap.Logger
	echo      *echo.Echo
	repos     *database.Repositories
	limiter   *ratelimit.Limiter
	publisher messaging.QuestionPublisher
}

// NewServer wires the HTTP surface. The publisher may be nil when no Redis
// endpoint is configured.
func NewServer(cfg *config.Config, logger *zap.Logger, repos *database.Repositories, publisher messaging.QuestionPublisher) *Server {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.Service.ClientURL},
		AllowMethods: []string{echo.GET, echo.POST},
	}))

	return &Server{
		config:    cfg,
		logger:    logger,
		echo:      e,
		repos:     repos,
		limiter:   ratelimit.NewLimiter(&cfg.RateLimit),
		publisher: publisher,
	}
}

func (s *Server) Start() error {
	// Setup routes
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": "quizr",
		})
	})

	// Initialize collaborator clients and services
	source := opentdb.NewClient(s.config.Service.Trivia.BaseURL, nil, s.logger)
	questionService := usecase.NewQuestionService(s.repos.Question, source, s.publisher, s.logger)
	attemptService := usecase.NewAttemptService(s.repos.Attempt, s.logger)

	questionHandler := handlers.NewQuestionHandler(s.logger, questionService, attemptService)
	deviceHandler := handlers.NewDeviceHandler(s.logger, s.repos.DeviceToken)
	monitorHandler := handlers.NewMonitorHandler(s.limiter)

	// API v1 routes; collaborator calls inherit the persistence timeout
	// through the request context.
	v1 := s.echo.Group("/api/v1", requestTimeout(s.config.Database.RequestTimeout))

	// Question endpoints are rate limited per device
	limited := v1.Group("", ratelimit.Middleware(s.limiter, handlers.DeviceID, s.logger))
	limited.GET("/daily-question", questionHandler.GetDailyQuestion)
	limited.POST("/daily-question/complete", questionHandler.CompleteAttempt)

	// Device bookkeeping
	v1.POST("/devices/token", deviceHandler.RegisterToken)

	// Internal/Debug routes
	internal := v1.Group("/internal")
	internal.GET("/rate-limit", monitorHandler.GetRateLimitStats)
}
