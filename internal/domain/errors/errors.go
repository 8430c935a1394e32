package errors

import "errors"

var (
	// ErrDuplicateQuestion indicates a concurrent caller already created the
	// question for the requested date. Handled by re-reading, never surfaced.
	ErrDuplicateQuestion = errors.New("daily question already exists for date")

	// ErrDuplicateAttempt indicates a concurrent request already created the
	// attempt record for the same device and date.
	ErrDuplicateAttempt = errors.New("attempt record already exists for device and date")

	// ErrQuestionNotFound indicates no daily question row exists for the date.
	ErrQuestionNotFound = errors.New("daily question not found")

	// ErrAttemptNotFound indicates a completion was requested before the
	// device ever fetched today's question.
	ErrAttemptNotFound = errors.New("attempt record not found")
)
