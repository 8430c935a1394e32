package model

import "time"

// AttemptRecord tracks a single device's progress on one day's question.
// At most one row exists per (device_id, date); IsCompleted is monotonic.
type AttemptRecord struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	DeviceID        string    `gorm:"size:255;not null;uniqueIndex:idx_attempt_records_device_date" json:"device_id"`
	Date            string    `gorm:"type:date;not null;uniqueIndex:idx_attempt_records_device_date" json:"date"`
	DailyQuestionID int64     `gorm:"index;not null" json:"daily_question_id"`
	HasAttempted    bool      `gorm:"not null;default:false" json:"has_attempted"`
	IsCompleted     bool      `gorm:"not null;default:false" json:"is_completed"`
	CreatedAt       time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt       time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (AttemptRecord) TableName() string {
	return "attempt_records"
}
