package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"petstar/config"
	"petstar/internal/infrastructure/broker"
	"petstar/pkg/logger"
)

// HandleWatch tails the change event stream and logs every event it receives.
func HandleWatch(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	consumer := "petstar-watch"
	if len(args) > 3 {
		consumer = args[3]
	}

	client, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	messages, err := broker.NewReceiver(client).Messages(ctx, consumer)
	if err != nil {
		ExitOnError(err)
	}

	logger.Info("watching events", "stream", cfg.BrokerConfig.StreamName, "consumer", consumer)

	for msg := range messages {
		event, err := msg.Event()
		if err != nil {
			logger.Warn("skipping malformed event", "body", msg.Body(), "err", err)
		} else {
			logger.Info("event", "type", event.Type, "id", event.ID, "owner", event.OwnerID,
				"media", len(event.MediaKeys), "at", event.OccurredAt)
		}

		if err := msg.Ack(); err != nil {
			logger.Error("failed to ack event", "err", err)
		}
	}
}
