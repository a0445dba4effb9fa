// Package service contains the spam check pipeline
package service

import (
	"context"
	"strings"
	"time"

	"spamwatch/internal/core/alert"
	"spamwatch/internal/core/classifier"
	"spamwatch/internal/core/lexicon"
	"spamwatch/internal/modkit/repokit"
	perr "spamwatch/internal/platform/errors"
	"spamwatch/internal/platform/logger"
	pstrings "spamwatch/internal/platform/strings"
	alertdom "spamwatch/internal/services/alert/domain"
	"spamwatch/internal/services/api/spam/domain"
	"spamwatch/internal/services/api/spam/repo"
)

// maxHistory caps how many rows a history read can return
const maxHistory = 10

// Service defines the service contract for spam checks
type Service interface{ domain.ServicePort }

// Config holds the notification knobs supplied at process start
type Config struct {
	DefaultRecipient string
	ThresholdPct     float64
	// AsyncNotify dispatches alerts on a goroutine after persistence;
	// tests turn it off for determinism
	AsyncNotify bool
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	lex    *lexicon.Lexicon
	notify alertdom.NotifierPort
	cfg    Config
	log    logger.Logger
}

// New creates a spam check service. The notifier may be nil, in which case
// alerts are never attempted
func New(
	db repokit.TxRunner,
	binder repokit.Binder[repo.Repo],
	lex *lexicon.Lexicon,
	notifier alertdom.NotifierPort,
	cfg Config,
	log logger.Logger,
) *Svc {
	if db == nil {
		panic("spam.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("spam.Service requires a non nil Repo binder")
	}
	if lex == nil {
		panic("spam.Service requires a non nil lexicon")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		lex:    lex,
		notify: notifier,
		cfg:    cfg,
		log:    log.With().Str("component", "spam").Logger(),
	}
}

// Check runs the full pipeline: validate, classify, persist, evaluate the
// alert policy, dispatch. The persisted record is returned regardless of the
// notification outcome; only validation and persistence failures propagate
func (s *Svc) Check(ctx context.Context, in domain.CheckInput) (domain.CheckResult, error) {
	if strings.TrimSpace(in.Text) == "" {
		return domain.CheckResult{}, perr.WithField(perr.ValidationErrf("text must not be empty"), "text")
	}

	res := classifier.Classify(s.lex, in.Text)

	row, err := s.Repo.Append(ctx, repo.RowCheck{
		Text:        in.Text,
		Verdict:     string(res.Verdict),
		Probability: res.Probability,
		Matched:     res.Matched,
	})
	if err != nil {
		return domain.CheckResult{}, perr.FromPostgres(err, "append spam check")
	}

	decision := alert.Decide(res.Probability, in.NotifyEmail, s.cfg.DefaultRecipient, s.cfg.ThresholdPct)
	if decision.ShouldSend && s.notify != nil {
		a := alertdom.Alert{
			Recipient:   decision.Recipient,
			Probability: res.Probability,
			Matched:     res.Matched,
			Text:        in.Text,
		}
		if s.cfg.AsyncNotify {
			// persistence is confirmed; the response must not wait on SMTP
			go s.notify.Notify(context.WithoutCancel(ctx), a)
		} else {
			s.notify.Notify(ctx, a)
		}
	}

	return toResult(row), nil
}

// Recent returns up to limit history views, newest first, limit clamped to 10
func (s *Svc) Recent(ctx context.Context, limit int) ([]domain.HistoryItem, error) {
	if limit <= 0 || limit > maxHistory {
		limit = maxHistory
	}
	rows, err := s.Repo.Recent(ctx, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "list spam checks")
	}

	out := make([]domain.HistoryItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, toHistoryItem(r))
	}
	return out, nil
}

// Lexicon returns the active indicator phrases in match order
func (s *Svc) Lexicon() []string { return s.lex.Terms() }

func toResult(r repo.RowCheck) domain.CheckResult {
	return domain.CheckResult{
		ID:              r.ID,
		Result:          r.Verdict,
		SpamProbability: r.Probability,
		MatchedKeywords: matched(r.Matched),
		CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// historyTextMax is the display cap for text in history views
const historyTextMax = 80

func toHistoryItem(r repo.RowCheck) domain.HistoryItem {
	return domain.HistoryItem{
		ID:              r.ID,
		Text:            pstrings.Truncate(r.Text, historyTextMax),
		Result:          r.Verdict,
		SpamProbability: r.Probability,
		MatchedKeywords: matched(r.Matched),
		CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// matched keeps matchedKeywords a JSON array, never null
func matched(m []string) []string {
	if m == nil {
		return []string{}
	}
	return m
}
