// Package normalize folds text into a canonical matching form
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Fold maps text to a case-insensitive canonical form for substring matching.
// NFKC unifies compatibility variants, width folding maps fullwidth forms,
// case folding beats ToLower for non-ASCII. Runs of whitespace collapse to a
// single space and the ends are trimmed.
func Fold(s string) string {
	chain := transform.Chain(norm.NFKC, width.Fold, cases.Fold())
	out, _, err := transform.String(chain, s)
	if err != nil {
		// fall back to a plain lowercase view rather than dropping input
		out = strings.ToLower(s)
	}
	return strings.Join(strings.Fields(out), " ")
}
