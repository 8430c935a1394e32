package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kbpark824/quizr/internal/config"
	"github.com/kbpark824/quizr/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

const defaultChannel = "quizr:daily-question:created"

// QuestionPublisher announces newly provisioned daily questions so downstream
// jobs (push broadcast, analytics) can react without polling the table.
type QuestionPublisher interface {
	PublishCreated(ctx context.Context, question *model.DailyQuestion) error
	Close() error
}

type redisQuestionPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisQuestionPublisher creates a Redis-backed question publisher
func NewRedisQuestionPublisher(cfg *config.RedisConfig) QuestionPublisher {
	channel := cfg.Channel
	if channel == "" {
		channel = defaultChannel
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &redisQuestionPublisher{
		client:  client,
		channel: channel,
	}
}

// PublishCreated publishes the created question as JSON
func (p *redisQuestionPublisher) PublishCreated(ctx context.Context, question *model.DailyQuestion) error {
	if question == nil {
		return fmt.Errorf("no question to publish")
	}

	payload, err := json.Marshal(question)
	if err != nil {
		return fmt.Errorf("failed to marshal question event: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish question event: %w", err)
	}

	return nil
}

// Close shuts down the underlying Redis connection
func (p *redisQuestionPublisher) Close() error {
	return p.client.Close()
}
