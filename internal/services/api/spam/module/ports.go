package module

import (
	"context"

	spamdom "spamwatch/internal/services/api/spam/domain"
	spamsvc "spamwatch/internal/services/api/spam/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptSpamPort adapts the spam service to the domain port interface
type adaptSpamPort struct{ svc spamsvc.Service }

// Check implements the domain ServicePort interface
func (a adaptSpamPort) Check(ctx context.Context, in spamdom.CheckInput) (spamdom.CheckResult, error) {
	return a.svc.Check(ctx, in)
}

// Recent implements the domain ServicePort interface
func (a adaptSpamPort) Recent(ctx context.Context, limit int) ([]spamdom.HistoryItem, error) {
	return a.svc.Recent(ctx, limit)
}

// Lexicon implements the domain ServicePort interface
func (a adaptSpamPort) Lexicon() []string { return a.svc.Lexicon() }
