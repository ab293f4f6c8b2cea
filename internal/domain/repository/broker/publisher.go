package broker

import (
	"context"

	"petstar/internal/domain/entity"
)

type Publisher interface {
	Publish(ctx context.Context, event entity.Event) error
}
