package classifier_test

import (
	"reflect"
	"strings"
	"testing"

	"spamwatch/internal/core/classifier"
	"spamwatch/internal/core/lexicon"
)

func mustLexicon(t *testing.T) *lexicon.Lexicon {
	t.Helper()
	l, err := lexicon.Load()
	if err != nil {
		t.Fatalf("lexicon: %v", err)
	}
	return l
}

func TestClassify_SpamScenario(t *testing.T) {
	l := mustLexicon(t)

	got := classifier.Classify(l, "Congratulations! You are a WINNER of a FREE prize. Click here now!")

	want := []string{"congratulations", "winner", "free", "prize", "click here"}
	have := map[string]bool{}
	for _, m := range got.Matched {
		have[m] = true
	}
	for _, w := range want {
		if !have[w] {
			t.Fatalf("matched %v, missing %q", got.Matched, w)
		}
	}
	if got.Probability != 1.0 {
		t.Fatalf("probability = %v, want 1.0", got.Probability)
	}
	if got.Verdict != classifier.VerdictSpam {
		t.Fatalf("verdict = %q, want spam", got.Verdict)
	}
}

func TestClassify_CleanScenario(t *testing.T) {
	l := mustLexicon(t)

	got := classifier.Classify(l, "Let's meet tomorrow at 3pm for the project review.")

	if len(got.Matched) != 0 {
		t.Fatalf("matched = %v, want none", got.Matched)
	}
	if got.Probability != 0.0 {
		t.Fatalf("probability = %v, want 0.0", got.Probability)
	}
	if got.Verdict != classifier.VerdictNotSpam {
		t.Fatalf("verdict = %q, want not_spam", got.Verdict)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	l := mustLexicon(t)
	text := "free PRIZE, click here, free prize"

	a := classifier.Classify(l, text)
	b := classifier.Classify(l, text)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("results differ: %+v vs %+v", a, b)
	}
}

func TestClassify_ProbabilityBoundsAndVerdictConsistency(t *testing.T) {
	l := mustLexicon(t)

	// build texts with 0..7 distinct indicators
	terms := l.Terms()
	for n := 0; n <= 7 && n <= len(terms); n++ {
		text := strings.Join(terms[:n], " and then ")
		got := classifier.Classify(l, text)

		if got.Probability < 0 || got.Probability > 1 {
			t.Fatalf("n=%d: probability %v out of bounds", n, got.Probability)
		}
		if n >= 5 && got.Probability != 1.0 {
			t.Fatalf("n=%d: probability = %v, want saturation at 1.0", n, got.Probability)
		}
		spam := got.Probability >= 0.5
		if (got.Verdict == classifier.VerdictSpam) != spam {
			t.Fatalf("n=%d: verdict %q inconsistent with probability %v", n, got.Verdict, got.Probability)
		}
	}
}

func TestClassify_Monotonicity(t *testing.T) {
	l := mustLexicon(t)
	terms := l.Terms()

	prev := -1.0
	text := "plain message with no flags"
	for n := 0; n < 6 && n < len(terms); n++ {
		got := classifier.Classify(l, text)
		if got.Probability < prev {
			t.Fatalf("probability decreased after adding indicators: %v < %v", got.Probability, prev)
		}
		prev = got.Probability
		text += " " + terms[n]
	}
}

func TestClassify_EachIndicatorCountsOnce(t *testing.T) {
	l := mustLexicon(t)

	got := classifier.Classify(l, "free free free free free free")
	if len(got.Matched) != 1 {
		t.Fatalf("matched = %v, want exactly one entry", got.Matched)
	}
	if got.Probability != 0.2 {
		t.Fatalf("probability = %v, want 0.2", got.Probability)
	}
}
