package feedback

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

//go:generate mockgen -source=mailer.go -destination=mock/mailer_mock.go -package=mock
type Mailer interface {
	Send(ctx context.Context, sub Submission) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Secure   bool
	From     string
	To       string
	Timeout  time.Duration
}

type SMTPMailer struct {
	cfg    SMTPConfig
	logger *zap.Logger
}

func NewSMTPMailer(cfg SMTPConfig, logger ...*zap.Logger) *SMTPMailer {
	l := zap.L().Named("feedback.mailer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("feedback.mailer")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.From == "" {
		cfg.From = cfg.User
	}
	return &SMTPMailer{cfg: cfg, logger: l}
}

func (m *SMTPMailer) Send(ctx context.Context, sub Submission) error {
	if m.cfg.Host == "" || m.cfg.To == "" {
		return fmt.Errorf("smtp: host and recipient are required")
	}

	msg, err := m.message(sub)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTimeout(m.timeout()),
	}
	if m.cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.User),
			mail.WithPassword(m.cfg.Password),
		)
	}
	if m.cfg.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	m.logger.Info("feedback email sent", zap.String("submission_id", sub.ID), zap.String("source", sub.Source))
	return nil
}

func (m *SMTPMailer) timeout() time.Duration {
	if m.cfg.Timeout > 0 {
		return m.cfg.Timeout
	}
	return 8 * time.Second
}

func (m *SMTPMailer) message(sub Submission) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return nil, fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(m.cfg.To); err != nil {
		return nil, fmt.Errorf("smtp to: %w", err)
	}
	if sub.Email != "" {
		// reply-to is best effort
		_ = msg.ReplyTo(sub.Email)
	}
	msg.Subject(Subject(sub))
	msg.SetBodyString(mail.TypeTextPlain, Body(sub))
	return msg, nil
}

func Subject(sub Submission) string {
	switch sub.Source {
	case SourceImprovementForm:
		return "[Improvement] " + sub.Name
	case SourceFeedbackWidget:
		return "[Feedback] " + firstNonEmpty(sub.Subject, sub.Name)
	}
	return "[Contact] " + firstNonEmpty(sub.Subject, sub.Name)
}

func Body(sub Submission) string {
	var b strings.Builder
	line := func(k, v string) {
		if v != "" {
			fmt.Fprintf(&b, "%s: %s\n", k, v)
		}
	}
	line("Source", sub.Source)
	line("Nama", sub.Name)
	line("Email", sub.Email)
	line("Role", sub.Role)
	line("Subject", sub.Subject)
	if sub.Rating != nil {
		line("Rating", fmt.Sprintf("%d/5", *sub.Rating))
	}
	line("Waktu", sub.SubmittedAt.Format(time.RFC3339))
	b.WriteString("\n")
	b.WriteString(sub.Message)
	b.WriteString("\n")
	return b.String()
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
