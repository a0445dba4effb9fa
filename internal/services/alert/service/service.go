// Package service composes and dispatches spam alert messages
package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"spamwatch/internal/platform/logger"
	"spamwatch/internal/platform/mail"
	"spamwatch/internal/services/alert/domain"
)

// Service defines the alert service contract
type Service interface{ domain.NotifierPort }

// Svc implements Service over an SMTP sending seam
type Svc struct {
	sender mail.Sender
	log    logger.Logger
}

// New creates an alert service. Panics on nil sender, wiring bug
func New(sender mail.Sender, log logger.Logger) *Svc {
	if sender == nil {
		panic("alert.Service requires a non nil mail.Sender")
	}
	return &Svc{
		sender: sender,
		log:    log.With().Str("component", "alert").Logger(),
	}
}

const textFrame = "----------------------------------------"

// Notify composes the alert body and sends it once. Transport failures are
// logged as structured events and never returned; the classification that
// triggered the alert has already been persisted and answered
func (s *Svc) Notify(ctx context.Context, a domain.Alert) {
	subject, body := Compose(a)

	if err := s.sender.Send(ctx, a.Recipient, subject, body); err != nil {
		s.log.Error().
			Err(err).
			Str("recipient", a.Recipient).
			Float64("probability", a.Probability).
			Msg("alert delivery failed")
		return
	}

	s.log.Info().
		Str("recipient", a.Recipient).
		Float64("probability", a.Probability).
		Msg("alert sent")
}

// Compose renders the subject and plain text body for an alert
func Compose(a domain.Alert) (subject, body string) {
	pct := int(math.Round(a.Probability * 100))

	matched := "none"
	if len(a.Matched) > 0 {
		matched = strings.Join(a.Matched, ", ")
	}

	subject = fmt.Sprintf("Spam alert: %d%% spam probability", pct)
	body = fmt.Sprintf(
		"Spam probability: %d%%\nMatched indicators: %s\nOriginal message:\n%s\n%s\n%s\n",
		pct, matched, textFrame, a.Text, textFrame,
	)
	return subject, body
}
