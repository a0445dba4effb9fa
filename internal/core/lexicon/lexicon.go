// Package lexicon holds the ordered set of spam indicator phrases
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"spamwatch/internal/core/normalize"
)

// indicators.json is the default phrase list, ordered by match priority
//
//go:embed indicators.json
var embedded []byte

// Lexicon is an immutable ordered set of case-insensitive indicator phrases.
// Safe for unlimited concurrent readers once constructed
type Lexicon struct {
	terms  []string // display form, lexicon order
	folded []string // canonical form used for matching, same order
}

// Load builds the lexicon from the embedded default list
func Load() (*Lexicon, error) {
	return fromJSON(embedded)
}

// LoadFile builds the lexicon from a JSON file overriding the embedded default
func LoadFile(path string) (*Lexicon, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: read %s: %w", path, err)
	}
	l, err := fromJSON(b)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %s: %w", path, err)
	}
	return l, nil
}

func fromJSON(b []byte) (*Lexicon, error) {
	var raw []string
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("lexicon: parse: %w", err)
	}

	l := &Lexicon{}
	seen := map[string]struct{}{}
	for _, t := range raw {
		f := normalize.Fold(t)
		if f == "" {
			continue
		}
		// duplicates in the source list are not re-added
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		l.terms = append(l.terms, t)
		l.folded = append(l.folded, f)
	}
	if len(l.terms) == 0 {
		return nil, fmt.Errorf("lexicon: no usable indicator phrases")
	}
	return l, nil
}

// Len returns the number of indicator phrases
func (l *Lexicon) Len() int { return len(l.terms) }

// Terms returns a copy of the indicator phrases in lexicon order
func (l *Lexicon) Terms() []string {
	out := make([]string, len(l.terms))
	copy(out, l.terms)
	return out
}

// Match returns the indicators contained in foldedText, in lexicon order,
// each at most once. foldedText must already be in normalize.Fold form
func (l *Lexicon) Match(foldedText string) []string {
	var out []string
	for i, f := range l.folded {
		if strings.Contains(foldedText, f) {
			out = append(out, l.terms[i])
		}
	}
	return out
}
