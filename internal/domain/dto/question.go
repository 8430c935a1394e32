package dto

// UserStatus describes a device's progress on today's question.
type UserStatus struct {
	HasAttempted bool `json:"has_attempted"`
	IsCompleted  bool `json:"is_completed"`
	CanAttempt   bool `json:"can_attempt"`
}

// DailyQuestionResponse is the payload for GET /api/v1/daily-question.
type DailyQuestionResponse struct {
	ID               int64      `json:"id"`
	Question         string     `json:"question"`
	CorrectAnswer    string     `json:"correct_answer"`
	IncorrectAnswers []string   `json:"incorrect_answers"`
	UserStatus       UserStatus `json:"user_status"`
}

// CompleteAttemptResponse is the payload for POST /api/v1/daily-question/complete.
type CompleteAttemptResponse struct {
	Success    bool       `json:"success"`
	Message    string     `json:"message"`
	UserStatus UserStatus `json:"user_status"`
}

// RegisterTokenRequest registers a device's push destination.
type RegisterTokenRequest struct {
	Token    string `json:"token" validate:"required,max=512"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}
