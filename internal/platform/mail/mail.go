// Package mail provides an SMTP sending seam used for outbound notifications
package mail

import (
	"context"
	"fmt"

	"spamwatch/internal/platform/config"
	"spamwatch/internal/platform/logger"

	gomail "github.com/wneessen/go-mail"
)

// Sender delivers a plain text message to a single recipient
type Sender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// Config holds SMTP connection settings
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// StartTLS controls whether STARTTLS is required, defaults to opportunistic
	StartTLS bool
}

// FromConf reads SMTP settings from an ALERT_ scoped config view
func FromConf(cfg config.Conf) Config {
	return Config{
		Host:     cfg.MustString("SMTP_HOST"),
		Port:     cfg.MayInt("SMTP_PORT", 587),
		Username: cfg.MayString("SMTP_USER", ""),
		Password: cfg.MayString("SMTP_PASS", ""),
		From:     cfg.MustString("SMTP_FROM"),
		StartTLS: cfg.MayBool("SMTP_STARTTLS", false),
	}
}

// smtpSender sends via go-mail, one connection per Send
type smtpSender struct {
	cfg Config
	log logger.Logger
}

// NewSMTP builds a Sender backed by go-mail
func NewSMTP(cfg Config, log logger.Logger) Sender {
	return &smtpSender{cfg: cfg, log: log.With().Str("component", "mail").Logger()}
}

func (s *smtpSender) Send(ctx context.Context, recipient, subject, body string) error {
	if recipient == "" {
		return fmt.Errorf("mail: empty recipient")
	}

	msg := gomail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return fmt.Errorf("mail: from %q: %w", s.cfg.From, err)
	}
	if err := msg.To(recipient); err != nil {
		return fmt.Errorf("mail: to %q: %w", recipient, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	opts := []gomail.Option{
		gomail.WithPort(s.cfg.Port),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.cfg.Username),
			gomail.WithPassword(s.cfg.Password),
		)
	}
	if s.cfg.StartTLS {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}

	client, err := gomail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("mail: client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mail: send to %q: %w", recipient, err)
	}

	s.log.Debug().Str("to", recipient).Str("subject", subject).Msg("mail sent")
	return nil
}
