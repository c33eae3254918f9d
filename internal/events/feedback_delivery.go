package events

import "time"

const FeedbackDeliveryTopic = "care.feedback.delivery.v1"

const FeedbackDeliveryFailed = "feedback.delivery_failed"

// FeedbackSubmission mirrors the accepted feedback form so a retry can
// rebuild the email or sheet row without the original request.
type FeedbackSubmission struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Subject     string    `json:"subject,omitempty"`
	Role        string    `json:"role,omitempty"`
	Message     string    `json:"message"`
	Rating      *int      `json:"rating,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type FeedbackDeliveryEvent struct {
	EventType  string             `json:"event_type"`
	Channel    string             `json:"channel"`
	Reason     string             `json:"reason,omitempty"`
	Submission FeedbackSubmission `json:"submission"`
	OccurredAt time.Time          `json:"occurred_at"`
}
