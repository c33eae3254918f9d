package producer

import (
	"context"
	"time"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/messaging/kafka"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/metrics"

	"go.uber.org/zap"
)

const batchSize = 50

// ProcessOutboxEvents drains due outbox rows once on start, then every
// pollInterval, until ctx is cancelled.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		if err := processPendingEvents(ctx, repo, writer, log); err != nil {
			log.Error("process outbox events failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
		}
	}
}

func processPendingEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) error {
	due, err := repo.ListPending(ctx, batchSize)
	if err != nil || len(due) == 0 {
		return err
	}

	logger.Debug("publishing outbox batch", zap.Int("count", len(due)))

	for i, publishErr := range publishBatch(ctx, writer, due) {
		event := due[i]
		fields := []zap.Field{
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
			zap.Int("retry_count", event.RetryCount),
		}

		if publishErr != nil {
			metrics.OutboxPublished.WithLabelValues("failed").Inc()
			logger.Warn("publish outbox event failed", append(fields, zap.Error(publishErr))...)
			if err := repo.MarkFailed(ctx, event.ID, publishErr.Error()); err != nil {
				logger.Error("mark outbox failed failed", zap.String("outbox_id", event.ID), zap.Error(err))
			}
			if event.RetryCount+1 >= kafka.MaxOutboxRetries {
				logger.Error("outbox event parked as dead", fields...)
			}
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			// published but not marked: the next poll sends it again
			logger.Error("mark outbox sent failed", zap.String("outbox_id", event.ID), zap.Error(err))
			continue
		}
		metrics.OutboxPublished.WithLabelValues("sent").Inc()
		logger.Info("outbox event sent", fields...)
	}

	return nil
}
