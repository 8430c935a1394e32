package repository

import (
	"context"

	"github.com/kbpark824/quizr/internal/domain/model"
)

// DeviceTokenRepository persists push destinations. Upsert replaces an
// existing token for the same device.
type DeviceTokenRepository interface {
	Upsert(ctx context.Context, token *model.DeviceToken) error
	ListAll(ctx context.Context) ([]model.DeviceToken, error)
}
