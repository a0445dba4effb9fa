// Package classifier scores free text against a spam indicator lexicon
package classifier

import (
	"spamwatch/internal/core/lexicon"
	"spamwatch/internal/core/normalize"
)

// Verdict is the binary classification outcome
type Verdict string

// Verdict values as they appear on the wire
const (
	VerdictSpam    Verdict = "spam"
	VerdictNotSpam Verdict = "not_spam"
)

// Result is the outcome of classifying one text
type Result struct {
	Verdict     Verdict
	Probability float64
	Matched     []string
}

// saturation is the matched-indicator count at which probability reaches 1.0
const saturation = 5.0

// spamThreshold is the probability at or above which the verdict is spam
const spamThreshold = 0.5

// Classify scores text against the lexicon. Pure and deterministic: matching
// is case-insensitive substring containment in lexicon order, each indicator
// counted at most once regardless of how often it occurs.
// Callers are responsible for rejecting blank input first
func Classify(lex *lexicon.Lexicon, text string) Result {
	matched := lex.Match(normalize.Fold(text))

	p := float64(len(matched)) / saturation
	if p > 1.0 {
		p = 1.0
	}

	v := VerdictNotSpam
	if p >= spamThreshold {
		v = VerdictSpam
	}

	return Result{
		Verdict:     v,
		Probability: p,
		Matched:     matched,
	}
}
