package alert_test

import (
	"testing"

	"spamwatch/internal/core/alert"
)

func TestDecide(t *testing.T) {
	cases := []struct {
		name        string
		probability float64
		caller      string
		def         string
		threshold   float64
		wantSend    bool
		wantTo      string
	}{
		{"below gate with recipient", 0.39, "ops@example.com", "", 40, false, "ops@example.com"},
		{"at gate with recipient", 0.40, "ops@example.com", "", 40, true, "ops@example.com"},
		{"above gate with default", 0.8, "", "default@example.com", 40, true, "default@example.com"},
		{"caller beats default", 1.0, "ops@example.com", "default@example.com", 40, true, "ops@example.com"},
		{"no recipient never sends", 1.0, "", "", 40, false, ""},
		{"zero threshold still needs recipient", 0.0, "", "", 0, false, ""},
		{"zero probability at zero threshold", 0.0, "ops@example.com", "", 0, true, "ops@example.com"},
		{"custom threshold", 0.6, "ops@example.com", "", 70, false, "ops@example.com"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := alert.Decide(c.probability, c.caller, c.def, c.threshold)
			if got.ShouldSend != c.wantSend {
				t.Fatalf("shouldSend = %v, want %v", got.ShouldSend, c.wantSend)
			}
			if got.Recipient != c.wantTo {
				t.Fatalf("recipient = %q, want %q", got.Recipient, c.wantTo)
			}
		})
	}
}
