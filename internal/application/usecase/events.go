package usecase

import (
	"context"
	"time"

	"petstar/internal/domain/entity"
	"petstar/internal/domain/repository/broker"
	"petstar/pkg/logger"
)

// publish announces a committed change. The change already happened, so a failure is only logged.
func publish(ctx context.Context, publisher broker.Publisher, eventType entity.EventType,
	id, ownerID string, mediaKeys []string, now time.Time,
) {
	event := entity.Event{
		Type:       eventType,
		ID:         id,
		OwnerID:    ownerID,
		MediaKeys:  mediaKeys,
		OccurredAt: now,
	}

	if err := publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		logger.Error("failed to publish event", "type", eventType, "id", id, "err", err)
	}
}
