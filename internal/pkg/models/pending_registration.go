package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PendingRegistration is the keyed request/response bridge for the wallet
// registration flow: the connect step stores one under a fresh request id,
// the profile form completes it by id. Expired entries are reaped by a
// TTL index on createdAt.
type PendingRegistration struct {
	ID            primitive.ObjectID `bson:"_id"`
	RequestID     string             `bson:"requestId"`
	WalletAddress string             `bson:"walletAddress"`
	CreatedAt     time.Time          `bson:"createdAt"`
}
