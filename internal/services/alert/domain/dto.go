// Package domain holds DTOs for the alert service contract
package domain

// Alert carries everything needed to compose one spam notification
type Alert struct {
	Recipient   string
	Probability float64
	Matched     []string
	Text        string
}
