package feedback_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/events"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/feedback"
	feedbackerrors "github.com/ccparagoncorp/customercare-web-sub001/internal/feedback/errors"
	feedbackMock "github.com/ccparagoncorp/customercare-web-sub001/internal/feedback/mock"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/messaging/kafka"
	kafkaMock "github.com/ccparagoncorp/customercare-web-sub001/internal/messaging/kafka/mock"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func contactForm() feedback.SubmitRequest {
	return feedback.SubmitRequest{
		Source:  feedback.SourceContactForm,
		Name:    "Rina",
		Email:   "rina@mail.com",
		Subject: "Produk",
		Message: "Kemasan bocor",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		req    feedback.SubmitRequest
		status int
		field  string
	}{
		{"valid contact", contactForm(), 0, ""},
		{"unknown source", feedback.SubmitRequest{Source: "sms", Name: "a", Message: "b"}, 400, ""},
		{"improvement without email", feedback.SubmitRequest{Source: feedback.SourceImprovementForm, Name: "a", Message: "b"}, 0, ""},
		{"improvement empty message", feedback.SubmitRequest{Source: feedback.SourceImprovementForm, Name: "a", Message: "  "}, 400, "message"},
		{"widget bad email", feedback.SubmitRequest{Source: feedback.SourceFeedbackWidget, Name: "a", Email: "not-an-email", Message: "b"}, 400, "email"},
		{"widget display-name email", feedback.SubmitRequest{Source: feedback.SourceFeedbackWidget, Name: "a", Email: "A <a@b.co>", Message: "b"}, 400, "email"},
		{"contact missing name", feedback.SubmitRequest{Source: feedback.SourceContactForm, Email: "a@b.co", Message: "b"}, 400, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := feedback.Validate(tt.req)
			if tt.status == 0 {
				assert.NoError(t, err)
				return
			}
			httpErr := apperror.ToHTTP(err)
			assert.Equal(t, tt.status, httpErr.Status)
			if tt.field != "" {
				details, ok := httpErr.Details.(map[string]any)
				require.True(t, ok)
				fields, ok := details["errors"].(apperror.FieldErrors)
				require.True(t, ok)
				assert.Contains(t, fields, tt.field)
			}
		})
	}
}

func TestService_SubmitRejectsBeforeSideEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := feedbackMock.NewMockMailer(ctrl)
	recorder := feedbackMock.NewMockRecorder(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	svc := feedback.NewService(mailer, recorder, outbox, feedback.Options{}, zap.NewNop())

	_, err := svc.Submit(context.Background(), feedback.SubmitRequest{Source: feedback.SourceImprovementForm, Name: "Rina"})
	assert.Equal(t, 400, apperror.ToHTTP(err).Status)
}

func TestService_SubmitDelivered(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := feedbackMock.NewMockMailer(ctrl)
	recorder := feedbackMock.NewMockRecorder(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	svc := feedback.NewService(mailer, recorder, outbox, feedback.Options{}, zap.NewNop())

	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, sub feedback.Submission) error {
		assert.Equal(t, "Rina", sub.Name)
		assert.NotEmpty(t, sub.ID)
		return nil
	})
	recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Submit(context.Background(), contactForm())
	require.NoError(t, err)
	assert.True(t, res.Ok)
}

func TestService_SubmitDegraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := feedbackMock.NewMockMailer(ctrl)
	recorder := feedbackMock.NewMockRecorder(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	svc := feedback.NewService(mailer, recorder, outbox, feedback.Options{ExternalTimeout: 50 * time.Millisecond}, zap.NewNop())

	// smtp hangs until the delivery timeout, sheet answers normally
	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, sub feedback.Submission) error {
		<-ctx.Done()
		return ctx.Err()
	})
	recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	var mu sync.Mutex
	var queued []kafka.OutboxEvent
	outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, e kafka.OutboxEvent) error {
		mu.Lock()
		defer mu.Unlock()
		queued = append(queued, e)
		return nil
	})

	res, err := svc.Submit(context.Background(), contactForm())
	require.NoError(t, err)
	assert.True(t, res.Ok)

	require.Len(t, queued, 1)
	assert.Equal(t, events.FeedbackDeliveryTopic, queued[0].Topic)
	assert.Equal(t, kafka.OutboxStatusPending, queued[0].Status)

	var evt events.FeedbackDeliveryEvent
	require.NoError(t, json.Unmarshal(queued[0].Payload, &evt))
	assert.Equal(t, feedback.ChannelEmail, evt.Channel)
	assert.Equal(t, "Kemasan bocor", evt.Submission.Message)
}

func TestService_SubmitBothFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := feedbackMock.NewMockMailer(ctrl)
	recorder := feedbackMock.NewMockRecorder(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	svc := feedback.NewService(mailer, recorder, outbox, feedback.Options{}, zap.NewNop())

	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("dial tcp: connection refused"))
	recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("quota exceeded"))
	outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down")).Times(2)

	res, err := svc.Submit(context.Background(), contactForm())
	require.NoError(t, err)
	assert.True(t, res.Ok)
}

func TestService_Redeliver(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := feedbackMock.NewMockMailer(ctrl)
	recorder := feedbackMock.NewMockRecorder(ctrl)
	svc := feedback.NewService(mailer, recorder, nil, feedback.Options{}, zap.NewNop())
	sub := feedback.Submission{ID: "s-1", Source: feedback.SourceFeedbackWidget}

	recorder.EXPECT().Record(gomock.Any(), sub).Return(nil)
	assert.NoError(t, svc.Redeliver(context.Background(), sub, feedback.ChannelSheet))

	mailer.EXPECT().Send(gomock.Any(), sub).Return(errors.New("still down"))
	assert.Error(t, svc.Redeliver(context.Background(), sub, feedback.ChannelEmail))

	assert.ErrorIs(t, svc.Redeliver(context.Background(), sub, "fax"), feedbackerrors.ErrUnknownChannel)
}
