package normalize_test

import (
	"testing"

	"spamwatch/internal/core/normalize"
)

func TestFold(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "FREE Prize", "free prize"},
		{"collapses whitespace", "click\t here \n now", "click here now"},
		{"trims ends", "  winner  ", "winner"},
		{"fullwidth folds", "ＦＲＥＥ", "free"},
		{"sharp s folds", "STRASSE Straße", "strasse strasse"},
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := normalize.Fold(c.in); got != c.want {
				t.Fatalf("Fold(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestFold_Idempotent(t *testing.T) {
	in := "Congratulations! You are a WINNER of a FREE prize."
	once := normalize.Fold(in)
	if twice := normalize.Fold(once); twice != once {
		t.Fatalf("fold not idempotent: %q vs %q", once, twice)
	}
}
