// Package email delivers outbound notifications. Delivery failures are
// reported to the caller, who decides whether they are fatal.
package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/healthnet/admin-api/pkg/logger"
)

type Service interface {
	SendPasswordReset(ctx context.Context, to, code string) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpService struct {
	dialer *gomail.Dialer
	from   string
	logger *logger.Logger
}

// NewSMTPService sends real mail through the configured relay.
func NewSMTPService(cfg SMTPConfig, logger *logger.Logger) Service {
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

func (s *smtpService) SendPasswordReset(ctx context.Context, to, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Password reset code")
	m.SetBody("text/plain", fmt.Sprintf(
		"A password reset was requested for your account.\n\nReset code: %s\n\nIf you did not request this, ignore this message.", code))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	s.logger.With("to", to).Info("password reset email sent")
	return nil
}

type logService struct {
	logger *logger.Logger
}

// NewLogService logs instead of sending. Used when no SMTP relay is
// configured, typically in development and tests.
func NewLogService(logger *logger.Logger) Service {
	return &logService{logger: logger}
}

func (s *logService) SendPasswordReset(ctx context.Context, to, code string) error {
	s.logger.With("to", to).With("code", code).Info("password reset email (log only)")
	return nil
}
