package tests

import (
	"context"
	"time"

	"github.com/Kredible-Inc/kredible-lending/internal/pkg/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) UserByWallet(ctx context.Context, walletAddress string) (*models.User, error) {
	args := m.Called(ctx, walletAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) InsertUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) UpdateUserByWallet(ctx context.Context, walletAddress string, patch bson.M) error {
	args := m.Called(ctx, walletAddress, patch)
	return args.Error(0)
}

func (m *MockUserRepo) UpdateCreditScore(ctx context.Context, walletAddress string, score models.CreditScore) error {
	args := m.Called(ctx, walletAddress, score)
	return args.Error(0)
}

func (m *MockUserRepo) ApplyLoanTotals(ctx context.Context, walletAddress string, lentDelta float64, borrowedDelta float64, activeLoansDelta int, reputationDelta int) error {
	args := m.Called(ctx, walletAddress, lentDelta, borrowedDelta, activeLoansDelta, reputationDelta)
	return args.Error(0)
}

func (m *MockUserRepo) SetLoggedIn(ctx context.Context, walletAddress string, loggedIn bool) error {
	args := m.Called(ctx, walletAddress, loggedIn)
	return args.Error(0)
}

type MockLoanRequestRepo struct {
	mock.Mock
}

func (m *MockLoanRequestRepo) InsertLoanRequest(ctx context.Context, request models.LoanRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockLoanRequestRepo) LoanRequestByID(ctx context.Context, id primitive.ObjectID) (*models.LoanRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LoanRequest), args.Error(1)
}

func (m *MockLoanRequestRepo) OpenLoanRequests(ctx context.Context, limit int64) ([]models.LoanRequest, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LoanRequest), args.Error(1)
}

func (m *MockLoanRequestRepo) LoanRequestsByBorrower(ctx context.Context, borrowerAddress string) ([]models.LoanRequest, error) {
	args := m.Called(ctx, borrowerAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LoanRequest), args.Error(1)
}

func (m *MockLoanRequestRepo) CountRecentByBorrower(ctx context.Context, borrowerAddress string, since time.Time) (int64, error) {
	args := m.Called(ctx, borrowerAddress, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLoanRequestRepo) TransitionStatus(ctx context.Context, id primitive.ObjectID, fromStatus string, set bson.M) (bool, error) {
	args := m.Called(ctx, id, fromStatus, set)
	return args.Bool(0), args.Error(1)
}

func (m *MockLoanRequestRepo) MarkPublishedToKafka(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLenderOfferRepo struct {
	mock.Mock
}

func (m *MockLenderOfferRepo) InsertLenderOffer(ctx context.Context, offer models.LenderOffer) error {
	args := m.Called(ctx, offer)
	return args.Error(0)
}

func (m *MockLenderOfferRepo) LenderOfferByID(ctx context.Context, id primitive.ObjectID) (*models.LenderOffer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LenderOffer), args.Error(1)
}

func (m *MockLenderOfferRepo) ActiveLenderOffers(ctx context.Context, limit int64) ([]models.LenderOffer, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LenderOffer), args.Error(1)
}

func (m *MockLenderOfferRepo) LenderOffersByLender(ctx context.Context, lenderAddress string) ([]models.LenderOffer, error) {
	args := m.Called(ctx, lenderAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LenderOffer), args.Error(1)
}

func (m *MockLenderOfferRepo) DeactivateOffer(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockAvailableLoanRepo struct {
	mock.Mock
}

func (m *MockAvailableLoanRepo) InsertAvailableLoan(ctx context.Context, loan models.AvailableLoan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockAvailableLoanRepo) AvailableLoanByID(ctx context.Context, id primitive.ObjectID) (*models.AvailableLoan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AvailableLoan), args.Error(1)
}

func (m *MockAvailableLoanRepo) AvailableLoans(ctx context.Context, limit int64) ([]models.AvailableLoan, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AvailableLoan), args.Error(1)
}

func (m *MockAvailableLoanRepo) TakeAvailableLoan(ctx context.Context, id primitive.ObjectID, takerAddress string) (bool, error) {
	args := m.Called(ctx, id, takerAddress)
	return args.Bool(0), args.Error(1)
}

type MockMatchRepo struct {
	mock.Mock
}

func (m *MockMatchRepo) InsertMatch(ctx context.Context, match models.Match) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}

func (m *MockMatchRepo) MatchByID(ctx context.Context, id primitive.ObjectID) (*models.Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockMatchRepo) TransitionStatus(ctx context.Context, id primitive.ObjectID, fromStatus, toStatus string) (bool, error) {
	args := m.Called(ctx, id, fromStatus, toStatus)
	return args.Bool(0), args.Error(1)
}

type MockLendingTxnRepo struct {
	mock.Mock
}

func (m *MockLendingTxnRepo) InsertLendingTransaction(ctx context.Context, txn models.LendingTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockLendingTxnRepo) LendingTransactionsByLender(ctx context.Context, lenderAddress string) ([]models.LendingTransaction, error) {
	args := m.Called(ctx, lenderAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LendingTransaction), args.Error(1)
}

func (m *MockLendingTxnRepo) CountByLender(ctx context.Context, lenderAddress string) (int64, error) {
	args := m.Called(ctx, lenderAddress)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLendingTxnRepo) TransitionStatus(ctx context.Context, matchID primitive.ObjectID, fromStatus, toStatus string) (bool, error) {
	args := m.Called(ctx, matchID, fromStatus, toStatus)
	return args.Bool(0), args.Error(1)
}

func (m *MockLendingTxnRepo) MarkPublishedToKafka(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBorrowingTxnRepo struct {
	mock.Mock
}

func (m *MockBorrowingTxnRepo) InsertBorrowingTransaction(ctx context.Context, txn models.BorrowingTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockBorrowingTxnRepo) BorrowingTransactionsByBorrower(ctx context.Context, borrowerAddress string) ([]models.BorrowingTransaction, error) {
	args := m.Called(ctx, borrowerAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BorrowingTransaction), args.Error(1)
}

func (m *MockBorrowingTxnRepo) CountByBorrower(ctx context.Context, borrowerAddress string) (int64, error) {
	args := m.Called(ctx, borrowerAddress)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBorrowingTxnRepo) TransitionStatus(ctx context.Context, matchID primitive.ObjectID, fromStatus, toStatus string) (bool, error) {
	args := m.Called(ctx, matchID, fromStatus, toStatus)
	return args.Bool(0), args.Error(1)
}

func (m *MockBorrowingTxnRepo) MarkPublishedToKafka(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockScoreCache struct {
	mock.Mock
}

func (m *MockScoreCache) GetScore(ctx context.Context, walletAddress string) (*models.CreditScore, error) {
	args := m.Called(ctx, walletAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreditScore), args.Error(1)
}

func (m *MockScoreCache) SetScore(ctx context.Context, walletAddress string, score models.CreditScore) error {
	args := m.Called(ctx, walletAddress, score)
	return args.Error(0)
}

func (m *MockScoreCache) Invalidate(ctx context.Context, walletAddress string) error {
	args := m.Called(ctx, walletAddress)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyUser(ctx context.Context, walletAddress string, event string, parameters map[string]string) error {
	args := m.Called(ctx, walletAddress, event, parameters)
	return args.Error(0)
}

type MockLifecyclePublisher struct {
	mock.Mock
}

func (m *MockLifecyclePublisher) PublishLoanLifecycle(ctx context.Context, event models.LoanLifecycleEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockCreditScorer struct {
	mock.Mock
}

func (m *MockCreditScorer) GetCreditScore(ctx context.Context, walletAddress string, forceRefresh bool) (*models.CreditScore, error) {
	args := m.Called(ctx, walletAddress, forceRefresh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreditScore), args.Error(1)
}

type MockWallet struct {
	mock.Mock
}

func (m *MockWallet) VerifyAddress(address string) error {
	args := m.Called(address)
	return args.Error(0)
}

func (m *MockWallet) XLMBalance(ctx context.Context, address string) (float64, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(float64), args.Error(1)
}

type MockPendingRegistrationRepo struct {
	mock.Mock
}

func (m *MockPendingRegistrationRepo) InsertPendingRegistration(ctx context.Context, reg models.PendingRegistration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *MockPendingRegistrationRepo) PendingRegistrationByRequestID(ctx context.Context, requestID string) (*models.PendingRegistration, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PendingRegistration), args.Error(1)
}

func (m *MockPendingRegistrationRepo) DeletePendingRegistration(ctx context.Context, requestID string) error {
	args := m.Called(ctx, requestID)
	return args.Error(0)
}
