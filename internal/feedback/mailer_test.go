package feedback_test

import (
	"context"
	"strings"
	"testing"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/feedback"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSubjectAndBody(t *testing.T) {
	rating := 5
	sub := feedback.Submission{
		Source: feedback.SourceFeedbackWidget, Name: "Rina", Email: "rina@mail.com",
		Subject: "Chat lambat", Message: "Respon agent lama", Rating: &rating, SubmittedAt: submittedAt,
	}
	assert.Equal(t, "[Feedback] Chat lambat", feedback.Subject(sub))

	body := feedback.Body(sub)
	assert.Contains(t, body, "Rating: 5/5")
	assert.Contains(t, body, "Email: rina@mail.com")
	assert.True(t, strings.HasSuffix(body, "Respon agent lama\n"))
	assert.NotContains(t, body, "Role:")

	improvement := feedback.Submission{Source: feedback.SourceImprovementForm, Name: "Budi"}
	assert.Equal(t, "[Improvement] Budi", feedback.Subject(improvement))
}

func TestSMTPMailer_RequiresHost(t *testing.T) {
	m := feedback.NewSMTPMailer(feedback.SMTPConfig{To: "cs@cc.id"}, zap.NewNop())
	assert.Error(t, m.Send(context.Background(), feedback.Submission{}))
}
