// Package domain holds DTOs for spam http and service contracts
package domain

// CheckInput is the body of a classification request
type CheckInput struct {
	Text        string `json:"text" validate:"required" example:"Congratulations! You are a WINNER"`
	NotifyEmail string `json:"notifyEmail,omitempty" validate:"omitempty,email" example:"ops@example.com"`
}

// CheckResult is the wire form of a persisted classification
type CheckResult struct {
	ID              string   `json:"id"`
	Result          string   `json:"result"`
	SpamProbability float64  `json:"spamProbability"`
	MatchedKeywords []string `json:"matchedKeywords"`
	CreatedAt       string   `json:"createdAt"`
}

// HistoryItem is a read-only view of a past classification.
// Text is truncated for compact display; the stored text never is
type HistoryItem struct {
	ID              string   `json:"id"`
	Text            string   `json:"text"`
	Result          string   `json:"result"`
	SpamProbability float64  `json:"spamProbability"`
	MatchedKeywords []string `json:"matchedKeywords"`
	CreatedAt       string   `json:"createdAt"`
}
