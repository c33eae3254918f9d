package producer

import (
	"context"
	"errors"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// MessageWriter is satisfied by *kafkago.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

func toMessage(event kafka.OutboxEvent) kafkago.Message {
	return kafkago.Message{
		Topic: event.Topic,
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: "outbox_id", Value: []byte(event.ID)},
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
			{Key: "request_id", Value: []byte(event.RequestID)},
		},
	}
}

// publishBatch writes events in one call and returns one error slot per
// event. A partial failure comes back from kafka-go as WriteErrors, indexed
// like the input; any other error fails the whole batch.
func publishBatch(ctx context.Context, writer MessageWriter, events []kafka.OutboxEvent) []error {
	msgs := make([]kafkago.Message, len(events))
	for i, e := range events {
		msgs[i] = toMessage(e)
	}

	results := make([]error, len(events))
	err := writer.WriteMessages(ctx, msgs...)
	if err == nil {
		return results
	}

	var perMessage kafkago.WriteErrors
	if errors.As(err, &perMessage) && len(perMessage) == len(events) {
		copy(results, perMessage)
		return results
	}
	for i := range results {
		results[i] = err
	}
	return results
}
