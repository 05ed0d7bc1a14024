package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Match is the single aggregate created when a loan request is funded or an
// available loan is taken. Both transaction records reference it, so the pair
// can always be resolved from one document.
type Match struct {
	ID                     primitive.ObjectID `bson:"_id"`
	GUID                   string             `bson:"GUID"`
	RequestID              primitive.ObjectID `bson:"requestId,omitempty"`
	AvailableLoanID        primitive.ObjectID `bson:"availableLoanId,omitempty"`
	LenderAddress          string             `bson:"lenderAddress"`
	BorrowerAddress        string             `bson:"borrowerAddress"`
	AmountUSDC             float64            `bson:"amountUSDC"`
	APR                    float64            `bson:"apr"`
	DurationDays           int                `bson:"durationDays"`
	LendingTransactionID   primitive.ObjectID `bson:"lendingTransactionId"`
	BorrowingTransactionID primitive.ObjectID `bson:"borrowingTransactionId"`
	Status                 string             `bson:"status"`
	CreatedAt              time.Time          `bson:"createdAt"`
}

type LendingTransaction struct {
	ID               primitive.ObjectID `bson:"_id"`
	MatchID          primitive.ObjectID `bson:"matchId"`
	LenderAddress    string             `bson:"lenderAddress"`
	BorrowerAddress  string             `bson:"borrowerAddress"`
	AmountUSDC       float64            `bson:"amountUSDC"`
	APR              float64            `bson:"apr"`
	DurationDays     int                `bson:"durationDays"`
	InterestEarned   float64            `bson:"interestEarned"`
	Status           string             `bson:"status"`
	StartDate        time.Time          `bson:"startDate"`
	DueDate          time.Time          `bson:"dueDate"`
	PublishedToKafka bool               `bson:"publishedToKafka"`
	CreatedAt        time.Time          `bson:"createdAt"`
}

type BorrowingTransaction struct {
	ID               primitive.ObjectID `bson:"_id"`
	MatchID          primitive.ObjectID `bson:"matchId"`
	LenderAddress    string             `bson:"lenderAddress"`
	BorrowerAddress  string             `bson:"borrowerAddress"`
	AmountUSDC       float64            `bson:"amountUSDC"`
	APR              float64            `bson:"apr"`
	DurationDays     int                `bson:"durationDays"`
	InterestOwed     float64            `bson:"interestOwed"`
	Status           string             `bson:"status"`
	StartDate        time.Time          `bson:"startDate"`
	DueDate          time.Time          `bson:"dueDate"`
	PublishedToKafka bool               `bson:"publishedToKafka"`
	CreatedAt        time.Time          `bson:"createdAt"`
}

// MyLoan is the merged per-user view over both transaction collections.
type MyLoan struct {
	ID           primitive.ObjectID `json:"id"`
	MatchID      primitive.ObjectID `json:"matchId"`
	Type         string             `json:"type"`
	Counterparty string             `json:"counterparty"`
	AmountUSDC   float64            `json:"amountUSDC"`
	APR          float64            `json:"apr"`
	DurationDays int                `json:"durationDays"`
	StartDate    time.Time          `json:"startDate"`
	DueDate      time.Time          `json:"dueDate"`
	Status       string             `json:"status"`
	Interest     float64            `json:"interest"`
}
