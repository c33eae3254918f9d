package feedback

import (
	"time"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/events"
)

const (
	SourceContactForm     = "contact-form"
	SourceFeedbackWidget  = "feedback-widget"
	SourceImprovementForm = "improvement-form"
)

const (
	ChannelEmail = "email"
	ChannelSheet = "sheet"
)

func validSource(s string) bool {
	switch s {
	case SourceContactForm, SourceFeedbackWidget, SourceImprovementForm:
		return true
	}
	return false
}

// Submission is an accepted form, stamped with an id and time.
type Submission struct {
	ID          string
	Source      string
	Name        string
	Email       string
	Subject     string
	Role        string
	Message     string
	Rating      *int
	SubmittedAt time.Time
}

func (s Submission) toEvent() events.FeedbackSubmission {
	return events.FeedbackSubmission{
		ID:          s.ID,
		Source:      s.Source,
		Name:        s.Name,
		Email:       s.Email,
		Subject:     s.Subject,
		Role:        s.Role,
		Message:     s.Message,
		Rating:      s.Rating,
		SubmittedAt: s.SubmittedAt,
	}
}

func FromEvent(e events.FeedbackSubmission) Submission {
	return Submission{
		ID:          e.ID,
		Source:      e.Source,
		Name:        e.Name,
		Email:       e.Email,
		Subject:     e.Subject,
		Role:        e.Role,
		Message:     e.Message,
		Rating:      e.Rating,
		SubmittedAt: e.SubmittedAt,
	}
}
