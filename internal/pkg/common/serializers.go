package common

import (
	"encoding/json"
	"time"

	"github.com/Kredible-Inc/kredible-lending/internal/pkg/consts"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func SerializeUser(walletAddress string, name string, email string, role string) models.User {
	return models.User{
		ID:            primitive.NewObjectID(),
		WalletAddress: walletAddress,
		Name:          name,
		Email:         email,
		Role:          role,
		CreditScore:   0,
		TotalLent:     0,
		TotalBorrowed: 0,
		ActiveLoans:   0,
		Reputation:    0,
		LoggedIn:      true,
		CreatedAt:     time.Now(),
	}
}

func SerializeLoanRequest(borrowerAddress string, borrowerScore int, amountUSDC float64, collateralXLM float64, ltv float64, apr float64, durationDays int) models.LoanRequest {
	return models.LoanRequest{
		ID:               primitive.NewObjectID(),
		GUID:             uuid.NewString(),
		BorrowerAddress:  borrowerAddress,
		BorrowerScore:    borrowerScore,
		AmountUSDC:       amountUSDC,
		CollateralXLM:    collateralXLM,
		LTV:              ltv,
		APR:              apr,
		DurationDays:     durationDays,
		Status:           consts.LoanRequestPending,
		CreatedAt:        time.Now(),
		PublishedToKafka: false,
	}
}

func SerializeLenderOffer(lenderAddress string, amountUSDC float64, interestRate float64, maxDurationDays int, minCreditScore int) models.LenderOffer {
	return models.LenderOffer{
		ID:              primitive.NewObjectID(),
		LenderAddress:   lenderAddress,
		AmountUSDC:      amountUSDC,
		InterestRate:    interestRate,
		MaxDurationDays: maxDurationDays,
		MinCreditScore:  minCreditScore,
		Status:          consts.OfferActive,
		CreatedAt:       time.Now(),
	}
}

func SerializeAvailableLoan(offer models.LenderOffer, maxLTV float64) models.AvailableLoan {
	return models.AvailableLoan{
		ID:             primitive.NewObjectID(),
		OfferID:        offer.ID,
		LenderAddress:  offer.LenderAddress,
		AmountUSDC:     offer.AmountUSDC,
		APR:            offer.InterestRate,
		DurationDays:   offer.MaxDurationDays,
		MinCreditScore: offer.MinCreditScore,
		MaxLTV:         maxLTV,
		Status:         consts.AvailableLoanAvailable,
		CreatedAt:      time.Now(),
	}
}

// SerializeMatch builds the aggregate plus both transaction records for a
// funded loan in one shot, so the three documents always agree on ids,
// amounts and dates.
func SerializeMatch(requestID primitive.ObjectID, availableLoanID primitive.ObjectID, lenderAddress string, borrowerAddress string, amountUSDC float64, apr float64, durationDays int) (models.Match, models.LendingTransaction, models.BorrowingTransaction) {
	now := time.Now()
	dueDate := DueDate(now, durationDays)
	interest := RoundTo2(SimpleInterest(amountUSDC, apr, durationDays))

	match := models.Match{
		ID:                     primitive.NewObjectID(),
		GUID:                   uuid.NewString(),
		RequestID:              requestID,
		AvailableLoanID:        availableLoanID,
		LenderAddress:          lenderAddress,
		BorrowerAddress:        borrowerAddress,
		AmountUSDC:             amountUSDC,
		APR:                    apr,
		DurationDays:           durationDays,
		LendingTransactionID:   primitive.NewObjectID(),
		BorrowingTransactionID: primitive.NewObjectID(),
		Status:                 consts.MatchActive,
		CreatedAt:              now,
	}

	lending := models.LendingTransaction{
		ID:               match.LendingTransactionID,
		MatchID:          match.ID,
		LenderAddress:    lenderAddress,
		BorrowerAddress:  borrowerAddress,
		AmountUSDC:       amountUSDC,
		APR:              apr,
		DurationDays:     durationDays,
		InterestEarned:   interest,
		Status:           consts.TransactionActive,
		StartDate:        now,
		DueDate:          dueDate,
		PublishedToKafka: false,
		CreatedAt:        now,
	}

	borrowing := models.BorrowingTransaction{
		ID:               match.BorrowingTransactionID,
		MatchID:          match.ID,
		LenderAddress:    lenderAddress,
		BorrowerAddress:  borrowerAddress,
		AmountUSDC:       amountUSDC,
		APR:              apr,
		DurationDays:     durationDays,
		InterestOwed:     interest,
		Status:           consts.TransactionActive,
		StartDate:        now,
		DueDate:          dueDate,
		PublishedToKafka: false,
		CreatedAt:        now,
	}

	return match, lending, borrowing
}

func SerializePendingRegistration(walletAddress string) models.PendingRegistration {
	return models.PendingRegistration{
		ID:            primitive.NewObjectID(),
		RequestID:     uuid.NewString(),
		WalletAddress: walletAddress,
		CreatedAt:     time.Now(),
	}
}

func SerializeLoanLifecycleEvent(event models.LoanLifecycleEvent) (string, error) {
	if event.GUID == "" {
		event.GUID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}
