package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/kbpark824/quizr/internal/domain/dto"
	"github.com/kbpark824/quizr/internal/domain/model"
	"github.com/kbpark824/quizr/internal/domain/repository"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DeviceHandler registers push destinations for devices
type DeviceHandler struct {
	logger    *zap.Logger
	tokenRepo repository.DeviceTokenRepository
	validate  *validator.Validate
}

// NewDeviceHandler creates a new device handler
func NewDeviceHandler(logger *zap.Logger, tokenRepo repository.DeviceTokenRepository) *DeviceHandler {
	return &DeviceHandler{
		logger:    logger,
		tokenRepo: tokenRepo,
		validate:  validator.New(),
	}
}

// RegisterToken handles POST /api/v1/devices/token
func (h *DeviceHandler) RegisterToken(c echo.Context) error {
	deviceID := DeviceID(c)
	if deviceID == "" {
		return errorResponse(c, http.StatusBadRequest, "device identifier required")
	}

	var req dto.RegisterTokenRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid request body")
	}

	if err := h.validate.Struct(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "token and platform (ios|android) are required")
	}

	token := &model.DeviceToken{
		DeviceID: deviceID,
		Token:    req.Token,
		Platform: req.Platform,
	}

	if err := h.tokenRepo.Upsert(c.Request().Context(), token); err != nil {
		h.logger.Error("Failed to register device token",
			zap.String("device_id", deviceID),
			zap.Error(err))
		return errorResponse(c, http.StatusInternalServerError, "failed to register token")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "token registered",
	})
}
