package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LoanRequest struct {
	ID               primitive.ObjectID `bson:"_id"`
	GUID             string             `bson:"GUID"`
	BorrowerAddress  string             `bson:"borrowerAddress"`
	BorrowerScore    int                `bson:"borrowerScore"`
	AmountUSDC       float64            `bson:"amountUSDC"`
	CollateralXLM    float64            `bson:"collateralXLM"`
	LTV              float64            `bson:"ltv"`
	APR              float64            `bson:"apr"`
	DurationDays     int                `bson:"durationDays"`
	Status           string             `bson:"status"`
	FundedBy         string             `bson:"fundedBy,omitempty"`
	DueDate          *time.Time         `bson:"dueDate,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt"`
	PublishedToKafka bool               `bson:"publishedToKafka"`
}
