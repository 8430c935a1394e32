package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DailyQuestion is the single trivia item authoritative for a calendar date.
// Rows are created lazily on the first request of the day and never mutated
// afterwards; the unique index on date is what makes concurrent creation safe.
type DailyQuestion struct {
	ID               int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Date             string     `gorm:"type:date;not null;uniqueIndex:idx_daily_questions_date" json:"date"`
	QuestionText     string     `gorm:"type:text;not null" json:"question"`
	CorrectAnswer    string     `gorm:"type:text;not null" json:"correct_answer"`
	IncorrectAnswers StringList `gorm:"type:jsonb;not null" json:"incorrect_answers"`
	CreatedAt        time.Time  `gorm:"default:now()" json:"created_at"`
}

// StringList stores an ordered list of answer strings as JSONB.
type StringList []string

// Value implements driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner interface
func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}

	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", src)
	}
}

// TableName specifies the table name for GORM
func (DailyQuestion) TableName() string {
	return "daily_questions"
}
