package domain

import "context"

// ServicePort defines the service contract for spam checks
type ServicePort interface {
	Check(ctx context.Context, in CheckInput) (CheckResult, error)
	Recent(ctx context.Context, limit int) ([]HistoryItem, error)
	Lexicon() []string
}
