package broker

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"petstar/internal/domain/entity"
)

type Publisher struct {
	client  *Client
	timeout time.Duration
}

func NewPublisher(client *Client, cfg PublisherConfig) *Publisher {
	return &Publisher{
		client:  client,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
}

// Publish appends the event to the stream. The JSON encoding travels in the "body" field.
func (p *Publisher) Publish(ctx context.Context, event entity.Event) error {
	if p.client == nil || p.client.redis == nil {
		return errors.New("redis not initialized")
	}

	body, err := event.Marshal()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.client.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: p.client.stream,
		Values: map[string]any{
			"type": string(event.Type),
			"body": body,
		},
	}).Err()
}
