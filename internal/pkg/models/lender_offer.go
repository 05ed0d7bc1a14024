package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LenderOffer struct {
	ID              primitive.ObjectID `bson:"_id"`
	LenderAddress   string             `bson:"lenderAddress"`
	AmountUSDC      float64            `bson:"amountUSDC"`
	InterestRate    float64            `bson:"interestRate"`
	MaxDurationDays int                `bson:"maxDurationDays"`
	MinCreditScore  int                `bson:"minCreditScore"`
	Status          string             `bson:"status"`
	CreatedAt       time.Time          `bson:"createdAt"`
}

// AvailableLoan is the market-facing view derived from a lender offer.
type AvailableLoan struct {
	ID             primitive.ObjectID `bson:"_id"`
	OfferID        primitive.ObjectID `bson:"offerId"`
	LenderAddress  string             `bson:"lenderAddress"`
	AmountUSDC     float64            `bson:"amountUSDC"`
	APR            float64            `bson:"apr"`
	DurationDays   int                `bson:"durationDays"`
	MinCreditScore int                `bson:"minCreditScore"`
	MaxLTV         float64            `bson:"maxLTV"`
	Status         string             `bson:"status"`
	TakenBy        string             `bson:"takenBy,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt"`
}
