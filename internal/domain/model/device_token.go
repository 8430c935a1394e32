package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceToken holds the push destination for a registered device.
type DeviceToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	DeviceID  string    `gorm:"size:255;not null;uniqueIndex:idx_device_tokens_device" json:"device_id"`
	Token     string    `gorm:"size:512;not null" json:"token"`
	Platform  string    `gorm:"size:20;not null" json:"platform"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (DeviceToken) TableName() string {
	return "device_tokens"
}
