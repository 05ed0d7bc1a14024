package services

import (
	"context"
	"time"

	"github.com/Kredible-Inc/kredible-lending/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// credit_score_service interfaces
type UserRepo interface {
	UserByWallet(ctx context.Context, walletAddress string) (*models.User, error)
	InsertUser(ctx context.Context, user models.User) error
	UpdateUserByWallet(ctx context.Context, walletAddress string, patch bson.M) error
	UpdateCreditScore(ctx context.Context, walletAddress string, score models.CreditScore) error
	ApplyLoanTotals(ctx context.Context, walletAddress string, lentDelta float64, borrowedDelta float64, activeLoansDelta int, reputationDelta int) error
	SetLoggedIn(ctx context.Context, walletAddress string, loggedIn bool) error
}

type LendingTxnRepo interface {
	InsertLendingTransaction(ctx context.Context, txn models.LendingTransaction) error
	LendingTransactionsByLender(ctx context.Context, lenderAddress string) ([]models.LendingTransaction, error)
	CountByLender(ctx context.Context, lenderAddress string) (int64, error)
	TransitionStatus(ctx context.Context, matchID primitive.ObjectID, fromStatus, toStatus string) (bool, error)
	MarkPublishedToKafka(ctx context.Context, id primitive.ObjectID) error
}

type BorrowingTxnRepo interface {
	InsertBorrowingTransaction(ctx context.Context, txn models.BorrowingTransaction) error
	BorrowingTransactionsByBorrower(ctx context.Context, borrowerAddress string) ([]models.BorrowingTransaction, error)
	CountByBorrower(ctx context.Context, borrowerAddress string) (int64, error)
	TransitionStatus(ctx context.Context, matchID primitive.ObjectID, fromStatus, toStatus string) (bool, error)
	MarkPublishedToKafka(ctx context.Context, id primitive.ObjectID) error
}

// loan_matching_service interfaces
type LoanRequestRepo interface {
	InsertLoanRequest(ctx context.Context, request models.LoanRequest) error
	LoanRequestByID(ctx context.Context, id primitive.ObjectID) (*models.LoanRequest, error)
	OpenLoanRequests(ctx context.Context, limit int64) ([]models.LoanRequest, error)
	LoanRequestsByBorrower(ctx context.Context, borrowerAddress string) ([]models.LoanRequest, error)
	CountRecentByBorrower(ctx context.Context, borrowerAddress string, since time.Time) (int64, error)
	TransitionStatus(ctx context.Context, id primitive.ObjectID, fromStatus string, set bson.M) (bool, error)
	MarkPublishedToKafka(ctx context.Context, id primitive.ObjectID) error
}

type LenderOfferRepo interface {
	InsertLenderOffer(ctx context.Context, offer models.LenderOffer) error
	LenderOfferByID(ctx context.Context, id primitive.ObjectID) (*models.LenderOffer, error)
	ActiveLenderOffers(ctx context.Context, limit int64) ([]models.LenderOffer, error)
	LenderOffersByLender(ctx context.Context, lenderAddress string) ([]models.LenderOffer, error)
	DeactivateOffer(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type AvailableLoanRepo interface {
	InsertAvailableLoan(ctx context.Context, loan models.AvailableLoan) error
	AvailableLoanByID(ctx context.Context, id primitive.ObjectID) (*models.AvailableLoan, error)
	AvailableLoans(ctx context.Context, limit int64) ([]models.AvailableLoan, error)
	TakeAvailableLoan(ctx context.Context, id primitive.ObjectID, takerAddress string) (bool, error)
}

type MatchRepo interface {
	InsertMatch(ctx context.Context, match models.Match) error
	MatchByID(ctx context.Context, id primitive.ObjectID) (*models.Match, error)
	TransitionStatus(ctx context.Context, id primitive.ObjectID, fromStatus, toStatus string) (bool, error)
}

// user_service interfaces
type PendingRegistrationRepo interface {
	InsertPendingRegistration(ctx context.Context, reg models.PendingRegistration) error
	PendingRegistrationByRequestID(ctx context.Context, requestID string) (*models.PendingRegistration, error)
	DeletePendingRegistration(ctx context.Context, requestID string) error
}

type WalletVerifier interface {
	VerifyAddress(address string) error
	XLMBalance(ctx context.Context, address string) (float64, error)
}

type ScoreCacheInterface interface {
	GetScore(ctx context.Context, walletAddress string) (*models.CreditScore, error)
	SetScore(ctx context.Context, walletAddress string, score models.CreditScore) error
	Invalidate(ctx context.Context, walletAddress string) error
}

type NotifierInterface interface {
	NotifyUser(ctx context.Context, walletAddress string, event string, parameters map[string]string) error
}

type LifecyclePublisher interface {
	PublishLoanLifecycle(ctx context.Context, event models.LoanLifecycleEvent) error
}

type CreditScorer interface {
	GetCreditScore(ctx context.Context, walletAddress string, forceRefresh bool) (*models.CreditScore, error)
}

// handler-facing interfaces
type UserServiceInterface interface {
	ConnectWallet(ctx context.Context, walletAddress string) (*ConnectWalletResult, error)
	CompleteRegistration(ctx context.Context, requestID string, name string, email string, role string) (*models.User, error)
	GetUser(ctx context.Context, walletAddress string) (*models.User, error)
	UpdateProfile(ctx context.Context, walletAddress string, name string, email string, role string) (*models.User, error)
	Logout(ctx context.Context, walletAddress string) error
}

type CreditScoreServiceInterface interface {
	GetCreditScore(ctx context.Context, walletAddress string, forceRefresh bool) (*models.CreditScore, error)
	CalculateCreditScore(ctx context.Context, walletAddress string) (*models.CreditScore, error)
	UpdateCreditScore(ctx context.Context, walletAddress string, score int) (*models.CreditScore, error)
}

type LoanMatchingServiceInterface interface {
	CreateLoanRequest(ctx context.Context, borrowerAddress string, amountUSDC float64, durationDays int) (*models.LoanRequest, error)
	CancelLoanRequest(ctx context.Context, requestID primitive.ObjectID, borrowerAddress string) (*models.LoanRequest, error)
	FundLoan(ctx context.Context, requestID primitive.ObjectID, funderAddress string) (*models.Match, error)
	TakeLoan(ctx context.Context, availableLoanID primitive.ObjectID, takerAddress string) (*models.Match, error)
	CreateLenderOffer(ctx context.Context, lenderAddress string, amountUSDC float64, interestRate float64, maxDurationDays int, minCreditScore int) (*models.LenderOffer, error)
	RepayLoan(ctx context.Context, matchID primitive.ObjectID) (*models.Match, error)
	MarkDefaulted(ctx context.Context, matchID primitive.ObjectID) (*models.Match, error)
	OpenLoanRequests(ctx context.Context, limit int64) ([]models.LoanRequest, error)
	LoanRequestsByBorrower(ctx context.Context, borrowerAddress string) ([]models.LoanRequest, error)
	ActiveLenderOffers(ctx context.Context, limit int64) ([]models.LenderOffer, error)
	LenderOffersByLender(ctx context.Context, lenderAddress string) ([]models.LenderOffer, error)
	AvailableLoans(ctx context.Context, limit int64) ([]models.AvailableLoan, error)
	MatchByID(ctx context.Context, id primitive.ObjectID) (*models.Match, error)
	MyLoans(ctx context.Context, walletAddress string) ([]models.MyLoan, error)
}
