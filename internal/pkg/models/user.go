package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID                    primitive.ObjectID `bson:"_id"`
	WalletAddress         string             `bson:"walletAddress"`
	Name                  string             `bson:"name,omitempty"`
	Email                 string             `bson:"email,omitempty"`
	Role                  string             `bson:"role"`
	CreditScore           int                `bson:"creditScore"`
	CreditScoreDetails    *CreditScore       `bson:"creditScoreDetails,omitempty"`
	LastCreditScoreUpdate *time.Time         `bson:"lastCreditScoreUpdate,omitempty"`
	TotalLent             float64            `bson:"totalLent"`
	TotalBorrowed         float64            `bson:"totalBorrowed"`
	ActiveLoans           int                `bson:"activeLoans"`
	Reputation            int                `bson:"reputation"`
	LoggedIn              bool               `bson:"loggedIn"`
	CreatedAt             time.Time          `bson:"createdAt"`
	UpdatedAt             *time.Time         `bson:"updatedAt,omitempty"`
}
