package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/events"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/feedback"
	feedbackerrors "github.com/ccparagoncorp/customercare-web-sub001/internal/feedback/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeFeedbackDelivery retries the failed channel of each feedback
// delivery event. A message is committed once the retry succeeds or the
// payload is unusable; a failed retry stays uncommitted.
func ConsumeFeedbackDelivery(
	ctx context.Context,
	reader MessageReader,
	feedbackService feedback.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.feedback_delivery")
	log.Info("feedback delivery consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("feedback delivery consumer stopped")
				return
			}
			log.Error("fetch feedback delivery message failed", zap.Error(err))
			continue
		}

		handleFeedbackDelivery(ctx, reader, feedbackService, log, msg)
	}
}

func handleFeedbackDelivery(
	ctx context.Context,
	reader MessageReader,
	feedbackService feedback.Service,
	log *zap.Logger,
	msg kafkago.Message,
) {
	var event events.FeedbackDeliveryEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode feedback delivery event failed", zap.Error(err))
		_ = reader.CommitMessages(ctx, msg)
		return
	}
	if event.EventType != events.FeedbackDeliveryFailed {
		log.Warn("unexpected event type, skipping", zap.String("event_type", event.EventType))
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	sub := feedback.FromEvent(event.Submission)
	if err := feedbackService.Redeliver(ctx, sub, event.Channel); err != nil {
		if errors.Is(err, feedbackerrors.ErrUnknownChannel) {
			log.Warn("unknown feedback channel, skipping", zap.String("channel", event.Channel))
			_ = reader.CommitMessages(ctx, msg)
			return
		}
		log.Error("feedback redelivery failed",
			zap.String("submission_id", sub.ID),
			zap.String("channel", event.Channel),
			zap.Error(err),
		)
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit feedback delivery message failed", zap.Error(err))
		return
	}

	log.Info("feedback redelivered from event",
		zap.String("submission_id", sub.ID),
		zap.String("channel", event.Channel),
	)
}
