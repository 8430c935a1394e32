package provider

import "context"

// TriviaItem is one sanitized, validated multiple-choice question from the
// external content source.
type TriviaItem struct {
	Question         string   `validate:"required,max=500"`
	CorrectAnswer    string   `validate:"required,max=200"`
	IncorrectAnswers []string `validate:"required,min=1,max=10,dive,required,max=200"`
}

// QuestionSource fetches exactly one multiple-choice trivia item per call.
type QuestionSource interface {
	FetchQuestion(ctx context.Context) (*TriviaItem, error)
}
