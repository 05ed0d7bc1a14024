package models

import "time"

// UserNotification is the Pub/Sub payload delivered to the notification
// pipeline when something happens to a user's loans or profile.
type UserNotification struct {
	WalletAddress string            `json:"walletAddress"`
	Event         string            `json:"event"`
	Parameters    map[string]string `json:"parameters,omitempty"`
	Timestamp     time.Time         `json:"timestamp"`
}
