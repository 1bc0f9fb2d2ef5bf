package notification

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"review-cycle-backend/internal/logger"
)

//go:generate mockgen -source=sender.go -destination=../mocks/notification_mocks.go -package=mocks

// ErrHeaderInjection is returned when an address carries a line break
var ErrHeaderInjection = errors.New("mail header value contains a line break")

// Sender delivers one HTML message to one recipient
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// SMTPConfig holds the outgoing mail server settings
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// SMTPSender sends mail through an SMTP relay
type SMTPSender struct {
	cfg      SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPSender creates a new SMTP sender
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg, sendMail: smtp.SendMail}
}

// Send delivers the message. The context is checked before dialing; net/smtp has no cancellation.
func (s *SMTPSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := buildMessage(s.cfg.From, to, subject, htmlBody)
	if err != nil {
		return fmt.Errorf("failed to build mail to %q: %w", to, err)
	}

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	addr := s.cfg.Host + ":" + s.cfg.Port
	if err := s.sendMail(addr, auth, s.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

// buildMessage renders the header block and body. The subject is written as an
// RFC 2047 encoded word whenever it is not plain printable ASCII.
func buildMessage(from, to, subject, htmlBody string) ([]byte, error) {
	if strings.ContainsAny(from, "\r\n") || strings.ContainsAny(to, "\r\n") {
		return nil, ErrHeaderInjection
	}

	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("UTF-8", subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String()), nil
}

// LogSender only logs messages. Used when no SMTP host is configured.
type LogSender struct{}

// NewLogSender creates a new log-only sender
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send logs the message instead of delivering it
func (s *LogSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"to":      to,
		"subject": subject,
		"bytes":   len(htmlBody),
	}).Info("mail delivery disabled, message logged")
	return nil
}
