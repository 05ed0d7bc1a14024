package tests

import (
	"context"
	"testing"
	"time"

	"github.com/Kredible-Inc/kredible-lending/internal/pkg/consts"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/models"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/pricing"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/services"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/utils/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	borrowerWallet = "GBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB"
	lenderWallet   = "GCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCC"
)

type matchingMocks struct {
	userRepo        *MockUserRepo
	loanRequestRepo *MockLoanRequestRepo
	lenderOfferRepo *MockLenderOfferRepo
	availableRepo   *MockAvailableLoanRepo
	matchRepo       *MockMatchRepo
	lendingRepo     *MockLendingTxnRepo
	borrowingRepo   *MockBorrowingTxnRepo
	creditScorer    *MockCreditScorer
	scoreCache      *MockScoreCache
	notifier        *MockNotifier
	kafkaPublisher  *MockLifecyclePublisher
}

func newMatchingService(t *testing.T) (*services.LoanMatchingService, *matchingMocks) {
	m := &matchingMocks{
		userRepo:        new(MockUserRepo),
		loanRequestRepo: new(MockLoanRequestRepo),
		lenderOfferRepo: new(MockLenderOfferRepo),
		availableRepo:   new(MockAvailableLoanRepo),
		matchRepo:       new(MockMatchRepo),
		lendingRepo:     new(MockLendingTxnRepo),
		borrowingRepo:   new(MockBorrowingTxnRepo),
		creditScorer:    new(MockCreditScorer),
		scoreCache:      new(MockScoreCache),
		notifier:        new(MockNotifier),
		kafkaPublisher:  new(MockLifecyclePublisher),
	}

	// async side effects run off the worker pool; they may or may not land
	// before the test finishes
	m.kafkaPublisher.On("PublishLoanLifecycle", mock.Anything, mock.Anything).Return(nil).Maybe()
	m.notifier.On("NotifyUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	m.loanRequestRepo.On("MarkPublishedToKafka", mock.Anything, mock.Anything).Return(nil).Maybe()
	m.lendingRepo.On("MarkPublishedToKafka", mock.Anything, mock.Anything).Return(nil).Maybe()
	m.borrowingRepo.On("MarkPublishedToKafka", mock.Anything, mock.Anything).Return(nil).Maybe()

	pool := worker.NewWorkerPool(2)
	t.Cleanup(pool.Stop)

	service := services.NewLoanMatchingService(services.LoanMatchingDeps{
		WorkerPool:      pool,
		UserRepo:        m.userRepo,
		LoanRequestRepo: m.loanRequestRepo,
		LenderOfferRepo: m.lenderOfferRepo,
		AvailableRepo:   m.availableRepo,
		MatchRepo:       m.matchRepo,
		LendingRepo:     m.lendingRepo,
		BorrowingRepo:   m.borrowingRepo,
		TierService:     services.NewCreditTierService(pricing.NewStaticPriceFeedWithPrice(0.12)),
		CreditScorer:    m.creditScorer,
		ScoreCache:      m.scoreCache,
		Notifier:        m.notifier,
		KafkaPublisher:  m.kafkaPublisher,
	})
	return service, m
}

func TestLoanMatchingService_CreateLoanRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid amount", func(t *testing.T) {
		service, _ := newMatchingService(t)
		_, err := service.CreateLoanRequest(ctx, borrowerWallet, 0, 30)
		assert.Equal(t, consts.ErrorInvalidAmount, err)
	})

	t.Run("invalid duration", func(t *testing.T) {
		service, _ := newMatchingService(t)
		_, err := service.CreateLoanRequest(ctx, borrowerWallet, 1000, -1)
		assert.Equal(t, consts.ErrorInvalidDuration, err)
	})

	t.Run("derives terms from the borrower tier", func(t *testing.T) {
		service, m := newMatchingService(t)

		m.creditScorer.On("GetCreditScore", ctx, borrowerWallet, false).Return(&models.CreditScore{Score: 720}, nil)
		m.loanRequestRepo.On("InsertLoanRequest", ctx, mock.Anything).Return(nil)
		m.userRepo.On("ApplyLoanTotals", ctx, borrowerWallet, 0.0, 0.0, 1, 0).Return(nil)

		request, err := service.CreateLoanRequest(ctx, borrowerWallet, 1000, 30)
		assert.NoError(t, err)

		// score 720 resolves to the high tier: LTV 80, APR 6
		assert.Equal(t, consts.LoanRequestPending, request.Status)
		assert.Equal(t, 720, request.BorrowerScore)
		assert.Equal(t, 80.0, request.LTV)
		assert.Equal(t, 6.0, request.APR)
		// 1000 / 0.80 / 0.12
		assert.InDelta(t, 10416.67, request.CollateralXLM, 0.01)
		assert.NotEmpty(t, request.GUID)

		m.loanRequestRepo.AssertCalled(t, "InsertLoanRequest", ctx, mock.Anything)
		m.userRepo.AssertCalled(t, "ApplyLoanTotals", ctx, borrowerWallet, 0.0, 0.0, 1, 0)
	})

	t.Run("low tier terms", func(t *testing.T) {
		service, m := newMatchingService(t)

		m.creditScorer.On("GetCreditScore", ctx, borrowerWallet, false).Return(&models.CreditScore{Score: 450}, nil)
		m.loanRequestRepo.On("InsertLoanRequest", ctx, mock.Anything).Return(nil)
		m.userRepo.On("ApplyLoanTotals", ctx, borrowerWallet, 0.0, 0.0, 1, 0).Return(nil)

		request, err := service.CreateLoanRequest(ctx, borrowerWallet, 500, 14)
		assert.NoError(t, err)
		assert.Equal(t, 50.0, request.LTV)
		assert.Equal(t, 9.0, request.APR)
	})
}

func TestLoanMatchingService_CancelLoanRequest(t *testing.T) {
	ctx := context.Background()
	requestID := primitive.NewObjectID()

	pendingRequest := func() *models.LoanRequest {
		return &models.LoanRequest{
			ID:              requestID,
			GUID:            "req-guid",
			BorrowerAddress: borrowerWallet,
			AmountUSDC:      1000,
			APR:             7.0,
			DurationDays:    30,
			Status:          consts.LoanRequestPending,
		}
	}

	t.Run("borrower withdraws a pending ask", func(t *testing.T) {
		service, m := newMatchingService(t)

		m.loanRequestRepo.On("LoanRequestByID", ctx, requestID).Return(pendingRequest(), nil)
		m.loanRequestRepo.On("TransitionStatus", ctx, requestID, consts.LoanRequestPending, mock.Anything).Return(true, nil)
		m.userRepo.On("ApplyLoanTotals", ctx, borrowerWallet, 0.0, 0.0, -1, 0).Return(nil)

		request, err := service.CancelLoanRequest(ctx, requestID, borrowerWallet)
		assert.NoError(t, err)
		assert.Equal(t, consts.LoanRequestCancelled, request.Status)
		m.userRepo.AssertCalled(t, "ApplyLoanTotals", ctx, borrowerWallet, 0.0, 0.0, -1, 0)
	})

	t.Run("only the owner may cancel", func(t *testing.T) {
		service, m := newMatchingService(t)

		m.loanRequestRepo.On("LoanRequestByID", ctx, requestID).Return(pendingRequest(), nil)

		_, err := service.CancelLoanRequest(ctx, requestID, lenderWallet)
		assert.Equal(t, consts.ErrorLoanRequestNotFound, err)
		m.loanRequestRepo.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("funded request stays put", func(t *testing.T) {
		service, m := newMatchingService(t)

		funded := pendingRequest()
		funded.Status = consts.LoanRequestFunded
		m.loanRequestRepo.On("LoanRequestByID", ctx, requestID).Return(funded, nil)
		m.loanRequestRepo.On("TransitionStatus", ctx, requestID, consts.LoanRequestPending, mock.Anything).Return(false, nil)

		_, err := service.CancelLoanRequest(ctx, requestID, borrowerWallet)
		assert.Equal(t, consts.ErrorLoanRequestNotPending, err)
		m.userRepo.AssertNotCalled(t, "ApplyLoanTotals", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestLoanMatchingService_FundLoan(t *testing.T) {
	ctx := context.Background()
	requestID := primitive.NewObjectID()

	pendingRequest := func() *models.LoanRequest {
		return &models.LoanRequest{
			ID:              requestID,
			GUID:            "req-guid",
			BorrowerAddress: borrowerWallet,
			AmountUSDC:      1000,
			APR:             7.0,
			DurationDays:    30,
			Status:          consts.LoanRequestPending,
		}
	}

	t.Run("happy path", func(t *testing.T) {
		service, m := newMatchingService(t)

		m.loanRequestRepo.On("LoanRequestByID", ctx, requestID).Return(pendingRequest(), nil)
		m.userRepo.On("UserByWallet", ctx, lenderWallet).Return(&models.User{WalletAddress: lenderWallet}, nil)
		m.loanRequestRepo.On("TransitionStatus", ctx, requestID, consts.LoanRequestPending, mock.Anything).Return(true, nil)
		m.matchRepo.On("InsertMatch", ctx, mock.Anything).Return(nil)

		var lending models.LendingTransaction
		m.lendingRepo.On("InsertLendingTransaction", ctx, mock.Anything).Run(func(args mock.Arguments) {
			lending = args.Get(1).(models.LendingTransaction)
		}).Return(nil)
		var borrowing models.BorrowingTransaction
		m.borrowingRepo.On("InsertBorrowingTransaction", ctx, mock.Anything).Run(func(args mock.Arguments) {
			borrowing = args.Get(1).(models.BorrowingTransaction)
		}).Return(nil)

		m.userRepo.On("ApplyLoanTotals", ctx, lenderWallet, 1000.0, 0.0, 1, 0).Return(nil)
		m.userRepo.On("ApplyLoanTotals", ctx, borrowerWallet, 0.0, 1000.0, 0, 0).Return(nil)
		m.scoreCache.On("Invalidate", ctx, mock.Anything).Return(nil)

		match, err := service.FundLoan(ctx, requestID, lenderWallet)
		assert.NoError(t, err)

		assert.Equal(t, consts.MatchActive, match.Status)
		assert.Equal(t, lenderWallet, match.LenderAddress)
		assert.Equal(t, borrowerWallet, match.BorrowerAddress)

		// 1000 * 7% * 30/365
		assert.InDelta(t, 5.75, lending.InterestEarned, 0.001)
		assert.InDelta(t, 5.75, borrowing.InterestOwed, 0.001)
		assert.Equal(t, match.ID, lending.MatchID)
		assert.Equal(t, match.ID, borrowing.MatchID)
		assert.Equal(t, lending.DueDate, borrowing.DueDate)
		assert.Equal(t, consts.TransactionActive, lending.Status)
	})

	t.Run("self dealing", func(t *testing.T) {
		service, m := newMatchingService(t)
		m.loanRequestRepo.On("LoanRequestByID", ctx, requestID).Return(pendingRequest(), nil)

		_, err := service.FundLoan(ctx, requestID, borrowerWallet)
		assert.Equal(t, consts.ErrorSelfDealing, err)
	})

	t.Run("unknown funder", func(t *testing.T) {
		service, m := newMatchingService(t)
		m.loanRequestRepo.On("LoanRequestByID", ctx, requestID).Return(pendingRequest(), nil)
		m.userRepo.On("UserByWallet", ctx, lenderWallet).Return(nil, consts.ErrorUserNotFound)

		_, err := service.FundLoan(ctx, requestID, lenderWallet)
		assert.Equal(t, consts.ErrorUserNotFound, err)
	})

	t.Run("concurrent funder loses the transition", func(t *testing.T) {
		service, m := newMatchingService(t)
		m.loanRequestRepo.On("LoanRequestByID", ctx, requestID).Return(pendingRequest(), nil)
		m.userRepo.On("UserByWallet", ctx, lenderWallet).Return(&models.User{WalletAddress: lenderWallet}, nil)
		m.loanRequestRepo.On("TransitionStatus", ctx, requestID, consts.LoanRequestPending, mock.Anything).Return(false, nil)

		_, err := service.FundLoan(ctx, requestID, lenderWallet)
		assert.Equal(t, consts.ErrorLoanRequestNotPending, err)
		m.matchRepo.AssertNotCalled(t, "InsertMatch", mock.Anything, mock.Anything)
	})
}

func TestLoanMatchingService_TakeLoan(t *testing.T) {
	ctx := context.Background()
	loanID := primitive.NewObjectID()
	offerID := primitive.NewObjectID()

	availableLoan := func() *models.AvailableLoan {
		return &models.AvailableLoan{
			ID:             loanID,
			OfferID:        offerID,
			LenderAddress:  lenderWallet,
			AmountUSDC:     5000,
			APR:            6.5,
			DurationDays:   30,
			MinCreditScore: 600,
			Status:         consts.AvailableLoanAvailable,
		}
	}

	t.Run("happy path", func(t *testing.T) {
		service, m := newMatchingService(t)

		m.availableRepo.On("AvailableLoanByID", ctx, loanID).Return(availableLoan(), nil)
		m.creditScorer.On("GetCreditScore", ctx, borrowerWallet, false).Return(&models.CreditScore{Score: 650}, nil)
		m.availableRepo.On("TakeAvailableLoan", ctx, loanID, borrowerWallet).Return(true, nil)
		m.lenderOfferRepo.On("DeactivateOffer", ctx, offerID).Return(true, nil)
		m.matchRepo.On("InsertMatch", ctx, mock.Anything).Return(nil)

		var lending models.LendingTransaction
		m.lendingRepo.On("InsertLendingTransaction", ctx, mock.Anything).Run(func(args mock.Arguments) {
			lending = args.Get(1).(models.LendingTransaction)
		}).Return(nil)
		m.borrowingRepo.On("InsertBorrowingTransaction", ctx, mock.Anything).Return(nil)

		m.userRepo.On("ApplyLoanTotals", ctx, lenderWallet, 5000.0, 0.0, 1, 0).Return(nil)
		m.userRepo.On("ApplyLoanTotals", ctx, borrowerWallet, 0.0, 5000.0, 0, 0).Return(nil)
		m.scoreCache.On("Invalidate", ctx, mock.Anything).Return(nil)

		match, err := service.TakeLoan(ctx, loanID, borrowerWallet)
		assert.NoError(t, err)
		assert.Equal(t, consts.MatchActive, match.Status)
		assert.Equal(t, loanID, match.AvailableLoanID)

		// 5000 * 6.5% * 30/365
		assert.InDelta(t, 26.71, lending.InterestEarned, 0.001)
	})

	t.Run("self dealing", func(t *testing.T) {
		service, m := newMatchingService(t)
		m.availableRepo.On("AvailableLoanByID", ctx, loanID).Return(availableLoan(), nil)

		_, err := service.TakeLoan(ctx, loanID, lenderWallet)
		assert.Equal(t, consts.ErrorSelfDealing, err)
	})

	t.Run("score below offer minimum", func(t *testing.T) {
		service, m := newMatchingService(t)
		m.availableRepo.On("AvailableLoanByID", ctx, loanID).Return(availableLoan(), nil)
		m.creditScorer.On("GetCreditScore", ctx, borrowerWallet, false).Return(&models.CreditScore{Score: 599}, nil)

		_, err := service.TakeLoan(ctx, loanID, borrowerWallet)
		assert.Equal(t, consts.ErrorScoreNotEligible, err)
		m.availableRepo.AssertNotCalled(t, "TakeAvailableLoan", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("concurrent taker loses the transition", func(t *testing.T) {
		service, m := newMatchingService(t)
		m.availableRepo.On("AvailableLoanByID", ctx, loanID).Return(availableLoan(), nil)
		m.creditScorer.On("GetCreditScore", ctx, borrowerWallet, false).Return(&models.CreditScore{Score: 650}, nil)
		m.availableRepo.On("TakeAvailableLoan", ctx, loanID, borrowerWallet).Return(false, nil)

		_, err := service.TakeLoan(ctx, loanID, borrowerWallet)
		assert.Equal(t, consts.ErrorAvailableLoanTaken, err)
		m.matchRepo.AssertNotCalled(t, "InsertMatch", mock.Anything, mock.Anything)
	})
}

func TestLoanMatchingService_CreateLenderOffer(t *testing.T) {
	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		service, _ := newMatchingService(t)

		_, err := service.CreateLenderOffer(ctx, lenderWallet, 0, 6.5, 30, 600)
		assert.Equal(t, consts.ErrorInvalidAmount, err)

		_, err = service.CreateLenderOffer(ctx, lenderWallet, 5000, -1, 30, 600)
		assert.Equal(t, consts.ErrorInvalidRate, err)

		_, err = service.CreateLenderOffer(ctx, lenderWallet, 5000, 6.5, 0, 600)
		assert.Equal(t, consts.ErrorInvalidDuration, err)

		_, err = service.CreateLenderOffer(ctx, lenderWallet, 5000, 6.5, 30, 200)
		assert.Equal(t, consts.ErrorInvalidMinScore, err)
	})

	t.Run("persists offer and available loan together", func(t *testing.T) {
		service, m := newMatchingService(t)

		m.userRepo.On("UserByWallet", ctx, lenderWallet).Return(&models.User{WalletAddress: lenderWallet}, nil)
		m.lenderOfferRepo.On("InsertLenderOffer", ctx, mock.Anything).Return(nil)

		var available models.AvailableLoan
		m.availableRepo.On("InsertAvailableLoan", ctx, mock.Anything).Run(func(args mock.Arguments) {
			available = args.Get(1).(models.AvailableLoan)
		}).Return(nil)

		offer, err := service.CreateLenderOffer(ctx, lenderWallet, 5000, 6.5, 30, 600)
		assert.NoError(t, err)

		assert.Equal(t, consts.OfferActive, offer.Status)
		assert.Equal(t, offer.ID, available.OfferID)
		assert.Equal(t, offer.AmountUSDC, available.AmountUSDC)
		assert.Equal(t, offer.InterestRate, available.APR)
		assert.Equal(t, float64(consts.DefaultMaxLTV), available.MaxLTV)
		assert.Equal(t, consts.AvailableLoanAvailable, available.Status)
	})
}

func TestLoanMatchingService_SettleMatch(t *testing.T) {
	ctx := context.Background()
	matchID := primitive.NewObjectID()
	requestID := primitive.NewObjectID()

	activeMatch := func() *models.Match {
		return &models.Match{
			ID:              matchID,
			GUID:            "match-guid",
			RequestID:       requestID,
			LenderAddress:   lenderWallet,
			BorrowerAddress: borrowerWallet,
			AmountUSDC:      1000,
			APR:             7.0,
			DurationDays:    30,
			Status:          consts.MatchActive,
			CreatedAt:       time.Now(),
		}
	}

	t.Run("repay completes everything", func(t *testing.T) {
		service, m := newMatchingService(t)

		m.matchRepo.On("MatchByID", ctx, matchID).Return(activeMatch(), nil)
		m.matchRepo.On("TransitionStatus", ctx, matchID, consts.MatchActive, consts.MatchCompleted).Return(true, nil)
		m.lendingRepo.On("TransitionStatus", ctx, matchID, consts.TransactionActive, consts.TransactionCompleted).Return(true, nil)
		m.borrowingRepo.On("TransitionStatus", ctx, matchID, consts.TransactionActive, consts.TransactionCompleted).Return(true, nil)
		m.loanRequestRepo.On("TransitionStatus", ctx, requestID, consts.LoanRequestFunded, mock.Anything).Return(true, nil)
		m.userRepo.On("ApplyLoanTotals", ctx, borrowerWallet, 0.0, 0.0, -1, 1).Return(nil)
		m.userRepo.On("ApplyLoanTotals", ctx, lenderWallet, 0.0, 0.0, -1, 0).Return(nil)
		m.scoreCache.On("Invalidate", ctx, mock.Anything).Return(nil)

		match, err := service.RepayLoan(ctx, matchID)
		assert.NoError(t, err)
		assert.Equal(t, consts.MatchCompleted, match.Status)
		m.userRepo.AssertCalled(t, "ApplyLoanTotals", ctx, borrowerWallet, 0.0, 0.0, -1, 1)
		m.userRepo.AssertCalled(t, "ApplyLoanTotals", ctx, lenderWallet, 0.0, 0.0, -1, 0)
	})

	t.Run("default hits reputation", func(t *testing.T) {
		service, m := newMatchingService(t)

		m.matchRepo.On("MatchByID", ctx, matchID).Return(activeMatch(), nil)
		m.matchRepo.On("TransitionStatus", ctx, matchID, consts.MatchActive, consts.MatchDefaulted).Return(true, nil)
		m.lendingRepo.On("TransitionStatus", ctx, matchID, consts.TransactionActive, consts.TransactionDefaulted).Return(true, nil)
		m.borrowingRepo.On("TransitionStatus", ctx, matchID, consts.TransactionActive, consts.TransactionDefaulted).Return(true, nil)
		m.loanRequestRepo.On("TransitionStatus", ctx, requestID, consts.LoanRequestFunded, mock.Anything).Return(true, nil)
		m.userRepo.On("ApplyLoanTotals", ctx, borrowerWallet, 0.0, 0.0, -1, -1).Return(nil)
		m.userRepo.On("ApplyLoanTotals", ctx, lenderWallet, 0.0, 0.0, -1, 0).Return(nil)
		m.scoreCache.On("Invalidate", ctx, mock.Anything).Return(nil)

		match, err := service.MarkDefaulted(ctx, matchID)
		assert.NoError(t, err)
		assert.Equal(t, consts.MatchDefaulted, match.Status)
	})

	t.Run("already settled", func(t *testing.T) {
		service, m := newMatchingService(t)

		settled := activeMatch()
		settled.Status = consts.MatchCompleted
		m.matchRepo.On("MatchByID", ctx, matchID).Return(settled, nil)
		m.matchRepo.On("TransitionStatus", ctx, matchID, consts.MatchActive, consts.MatchCompleted).Return(false, nil)

		_, err := service.RepayLoan(ctx, matchID)
		assert.Equal(t, consts.ErrorMatchNotActive, err)
	})
}

func TestLoanMatchingService_MyLoans(t *testing.T) {
	ctx := context.Background()
	service, m := newMatchingService(t)

	matchID := primitive.NewObjectID()
	futureDue := time.Now().AddDate(0, 0, 10)
	pastDue := time.Now().AddDate(0, 0, -5)
	m.lendingRepo.On("LendingTransactionsByLender", ctx, testWallet).Return([]models.LendingTransaction{
		{ID: primitive.NewObjectID(), MatchID: matchID, BorrowerAddress: borrowerWallet, AmountUSDC: 1000, InterestEarned: 5.75, Status: consts.TransactionActive, DueDate: futureDue},
	}, nil)
	m.borrowingRepo.On("BorrowingTransactionsByBorrower", ctx, testWallet).Return([]models.BorrowingTransaction{
		{ID: primitive.NewObjectID(), MatchID: matchID, LenderAddress: lenderWallet, AmountUSDC: 500, InterestOwed: 2.88, Status: consts.TransactionCompleted, DueDate: pastDue},
		{ID: primitive.NewObjectID(), MatchID: primitive.NewObjectID(), LenderAddress: lenderWallet, AmountUSDC: 750, InterestOwed: 4.31, Status: consts.TransactionActive, DueDate: pastDue},
	}, nil)

	loans, err := service.MyLoans(ctx, testWallet)
	assert.NoError(t, err)
	assert.Len(t, loans, 3)

	assert.Equal(t, consts.LoanTypeLent, loans[0].Type)
	assert.Equal(t, borrowerWallet, loans[0].Counterparty)
	assert.Equal(t, 5.75, loans[0].Interest)
	assert.Equal(t, consts.TransactionActive, loans[0].Status)

	assert.Equal(t, consts.LoanTypeBorrowed, loans[1].Type)
	assert.Equal(t, lenderWallet, loans[1].Counterparty)
	assert.Equal(t, 2.88, loans[1].Interest)
	// Settled transactions keep their stored status even past the due date.
	assert.Equal(t, consts.TransactionCompleted, loans[1].Status)

	// An active transaction past its due date surfaces as overdue.
	assert.Equal(t, consts.TransactionOverdue, loans[2].Status)
}
