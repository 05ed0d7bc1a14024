package models

import "time"

// LoanLifecycleEvent is the Kafka payload published on every loan state
// transition (requested, funded, taken, repaid, defaulted).
type LoanLifecycleEvent struct {
	GUID            string    `json:"guid"`
	EventType       string    `json:"eventType"`
	RequestID       string    `json:"requestId,omitempty"`
	MatchID         string    `json:"matchId,omitempty"`
	BorrowerAddress string    `json:"borrowerAddress,omitempty"`
	LenderAddress   string    `json:"lenderAddress,omitempty"`
	AmountUSDC      float64   `json:"amountUSDC"`
	APR             float64   `json:"apr"`
	DurationDays    int       `json:"durationDays"`
	Status          string    `json:"status"`
	ErrorCode       string    `json:"errorCode,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}
