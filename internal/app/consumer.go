package app

import (
	"context"
	"fmt"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/config"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/events"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/feedback"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer retries failed feedback deliveries. It needs no database: a
// failed retry stays uncommitted on the topic instead of going back to the outbox.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	recorder, err := newSheetRecorder(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	feedbackService := feedback.NewService(
		newMailer(cfg, logger),
		recorder,
		nil,
		feedback.Options{ExternalTimeout: cfg.ExternalTimeout},
		logger,
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.FeedbackDeliveryTopic,
		GroupID:        cfg.Kafka.GroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	runUntilSignal(func(ctx context.Context) {
		consumer.ConsumeFeedbackDelivery(ctx, reader, feedbackService, logger)
	})
	logger.Info("consumer stopped")
	return nil
}
