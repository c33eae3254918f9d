package feedback

import (
	"context"
	"encoding/json"
	"net/mail"
	"strings"
	"time"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/events"
	feedbackerrors "github.com/ccparagoncorp/customercare-web-sub001/internal/feedback/errors"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/messaging/kafka"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/contextutil"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=feedback_service.go -destination=mock/feedback_service_mock.go -package=mock
type Service interface {
	// Submit validates the form and attempts both deliveries. It reports ok
	// even when a delivery fails; failed channels are queued for retry.
	Submit(ctx context.Context, req SubmitRequest) (*SubmitResponse, error)
	// Redeliver retries a single channel for a previously accepted submission.
	Redeliver(ctx context.Context, sub Submission, channel string) error
}

type Options struct {
	ExternalTimeout time.Duration
}

type service struct {
	mailer   Mailer
	recorder Recorder
	outbox   kafka.OutboxRepository
	opts     Options
	now      func() time.Time
	logger   *zap.Logger
}

// NewService wires the delivery channels. outbox may be nil, in which case
// failed deliveries are only logged.
func NewService(mailer Mailer, recorder Recorder, outbox kafka.OutboxRepository, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("feedback.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("feedback.service")
	}
	if opts.ExternalTimeout <= 0 {
		opts.ExternalTimeout = 8 * time.Second
	}
	return &service{
		mailer:   mailer,
		recorder: recorder,
		outbox:   outbox,
		opts:     opts,
		now:      time.Now,
		logger:   l,
	}
}

func Validate(req SubmitRequest) error {
	source := strings.TrimSpace(req.Source)
	if !validSource(source) {
		return feedbackerrors.ErrUnknownSource
	}

	fe := apperror.FieldErrors{}
	if strings.TrimSpace(req.Name) == "" {
		fe.Add("name", "Nama wajib diisi")
	}
	if strings.TrimSpace(req.Message) == "" {
		fe.Add("message", "Pesan wajib diisi")
	}
	if source != SourceImprovementForm {
		email := strings.TrimSpace(req.Email)
		if email == "" {
			fe.Add("email", "Email wajib diisi")
		} else if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
			fe.Add("email", "Format email tidak valid")
		}
	}
	if !fe.Empty() {
		return fe.Err()
	}
	return nil
}

func (s *service) Submit(ctx context.Context, req SubmitRequest) (*SubmitResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if err := Validate(req); err != nil {
		s.logger.Debug("feedback rejected", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}

	sub := Submission{
		ID:          uuid.NewString(),
		Source:      strings.TrimSpace(req.Source),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Subject:     strings.TrimSpace(req.Subject),
		Role:        strings.TrimSpace(req.Role),
		Message:     strings.TrimSpace(req.Message),
		Rating:      req.Rating,
		SubmittedAt: s.now(),
	}

	// both deliveries always run; neither error stops the other
	channels := []string{ChannelEmail, ChannelSheet}
	results := make([]error, len(channels))
	var g errgroup.Group
	for i, ch := range channels {
		g.Go(func() error {
			results[i] = s.deliver(ctx, sub, ch)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for i, ch := range channels {
		err := results[i]
		if err == nil {
			continue
		}
		failed++
		metrics.FeedbackDeliveryFailures.WithLabelValues(ch).Inc()
		s.logger.Error("feedback delivery failed",
			zap.String("request_id", rid),
			zap.String("submission_id", sub.ID),
			zap.String("channel", ch),
			zap.Error(err),
		)
		s.enqueueRetry(ctx, sub, ch, err)
	}

	s.logger.Info("feedback submitted",
		zap.String("request_id", rid),
		zap.String("submission_id", sub.ID),
		zap.String("source", sub.Source),
		zap.Int("failed_channels", failed),
	)
	return &SubmitResponse{Ok: true}, nil
}

func (s *service) Redeliver(ctx context.Context, sub Submission, channel string) error {
	if channel != ChannelEmail && channel != ChannelSheet {
		return feedbackerrors.ErrUnknownChannel
	}
	if err := s.deliver(ctx, sub, channel); err != nil {
		metrics.FeedbackDeliveryFailures.WithLabelValues(channel).Inc()
		return err
	}
	s.logger.Info("feedback redelivered", zap.String("submission_id", sub.ID), zap.String("channel", channel))
	return nil
}

func (s *service) deliver(ctx context.Context, sub Submission, channel string) error {
	ctx, cancel := context.WithTimeout(ctx, s.opts.ExternalTimeout)
	defer cancel()

	switch channel {
	case ChannelEmail:
		if s.mailer == nil {
			return feedbackerrors.ErrMailNotConfigured
		}
		return s.mailer.Send(ctx, sub)
	case ChannelSheet:
		if s.recorder == nil {
			return feedbackerrors.ErrSheetNotConfigured
		}
		return s.recorder.Record(ctx, sub)
	}
	return feedbackerrors.ErrUnknownChannel
}

func (s *service) enqueueRetry(ctx context.Context, sub Submission, channel string, cause error) {
	if s.outbox == nil {
		return
	}

	payload, err := json.Marshal(events.FeedbackDeliveryEvent{
		EventType:  events.FeedbackDeliveryFailed,
		Channel:    channel,
		Reason:     cause.Error(),
		Submission: sub.toEvent(),
		OccurredAt: s.now().UTC(),
	})
	if err != nil {
		s.logger.Error("encode feedback retry failed", zap.String("submission_id", sub.ID), zap.Error(err))
		return
	}

	event := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "feedback",
		AggregateID:   sub.ID,
		EventType:     events.FeedbackDeliveryFailed,
		Topic:         events.FeedbackDeliveryTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := kafka.ValidateOutboxEvent(event); err != nil {
		s.logger.Error("invalid feedback retry event", zap.Error(err))
		return
	}
	// the request context may already be near its deadline
	if err := s.outbox.Create(context.WithoutCancel(ctx), event); err != nil {
		s.logger.Error("enqueue feedback retry failed",
			zap.String("submission_id", sub.ID),
			zap.String("channel", channel),
			zap.Error(err),
		)
	}
}
