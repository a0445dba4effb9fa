// Package alert holds the pure notification decision policy
package alert

// DefaultThresholdPct is the spam percentage at which alerts fire
const DefaultThresholdPct = 40.0

// Decision says whether to send an alert and to whom. Ephemeral, never stored
type Decision struct {
	ShouldSend bool
	Recipient  string
}

// Decide resolves the alert recipient and gates on the spam percentage.
// Total function: always returns a decision, never fails.
// The caller-provided recipient wins over the configured default; with
// neither present the decision is always no-send
func Decide(probability float64, callerRecipient, defaultRecipient string, thresholdPct float64) Decision {
	recipient := callerRecipient
	if recipient == "" {
		recipient = defaultRecipient
	}
	if recipient == "" {
		return Decision{}
	}
	if probability*100 < thresholdPct {
		return Decision{Recipient: recipient}
	}
	return Decision{ShouldSend: true, Recipient: recipient}
}
