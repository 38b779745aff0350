// Package mail delivers password-reset links. The SMTP mailer talks to a
// configured relay; the log mailer is the development default.
package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog"
)

// SMTPConfig holds relay settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendPasswordReset(_ context.Context, to, link string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Reset your hostel account password\r\n\r\n"+
			"A password reset was requested for your account.\r\n\r\n"+
			"Open the link below within 15 minutes to choose a new password:\r\n%s\r\n\r\n"+
			"If you did not request this, you can ignore this email.\r\n",
		m.cfg.From, to, link,
	)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}
	return nil
}

// LogMailer logs the reset link instead of sending it. Used when no SMTP
// relay is configured.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendPasswordReset(_ context.Context, to, link string) error {
	m.log.Info().Str("to", to).Str("link", link).Msg("password reset link (mail delivery disabled)")
	return nil
}
