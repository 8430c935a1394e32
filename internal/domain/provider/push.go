package provider

import "context"

// PushMessage is one notification destined for a single device token.
type PushMessage struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PushResult reports per-message delivery status from the push collaborator.
type PushResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// PushSender delivers a batch of messages and returns one result per message.
type PushSender interface {
	SendMessages(ctx context.Context, messages []PushMessage) ([]PushResult, error)
}
