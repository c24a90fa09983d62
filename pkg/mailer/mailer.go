package mailer

import (
	"fmt"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/skillswap/skillswap-api/pkg/config"
)

// Mailer sends transactional email. Sends are best-effort: callers treat a
// returned error as a logging concern, never as a request failure.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer delivers mail through a plain SMTP dialer.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

// NewSMTP constructs an SMTPMailer from config.
func NewSMTP(cfg config.SMTPConfig, logger *zap.Logger) *SMTPMailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

// Send dials the SMTP server and delivers a single text message.
func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Warn("email send failed", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

// MeetLinkBody renders the notification sent to learners when a session's
// meeting link is set.
func MeetLinkBody(sessionTitle, link string) (subject, body string) {
	subject = fmt.Sprintf("New GMeet Link for %s", sessionTitle)
	body = fmt.Sprintf("You have expressed interest in learning %s. Here is the GMeet link: %s", sessionTitle, link)
	return subject, body
}
