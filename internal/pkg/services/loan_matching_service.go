package services

import (
	"context"
	"time"

	"github.com/Kredible-Inc/kredible-lending/internal/pkg/common"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/consts"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/logger"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/models"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/utils"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/utils/worker"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoanMatchingService drives the loan request and offer state machines. Every
// transition goes through a conditional update so concurrent funders or
// takers cannot double-apply side effects.
type LoanMatchingService struct {
	workerPool      *worker.WorkerPool
	userRepo        UserRepo
	loanRequestRepo LoanRequestRepo
	lenderOfferRepo LenderOfferRepo
	availableRepo   AvailableLoanRepo
	matchRepo       MatchRepo
	lendingRepo     LendingTxnRepo
	borrowingRepo   BorrowingTxnRepo
	tierService     *CreditTierService
	creditScorer    CreditScorer
	scoreCache      ScoreCacheInterface
	notifier        NotifierInterface
	kafkaPublisher  LifecyclePublisher
}

type LoanMatchingDeps struct {
	WorkerPool      *worker.WorkerPool
	UserRepo        UserRepo
	LoanRequestRepo LoanRequestRepo
	LenderOfferRepo LenderOfferRepo
	AvailableRepo   AvailableLoanRepo
	MatchRepo       MatchRepo
	LendingRepo     LendingTxnRepo
	BorrowingRepo   BorrowingTxnRepo
	TierService     *CreditTierService
	CreditScorer    CreditScorer
	ScoreCache      ScoreCacheInterface
	Notifier        NotifierInterface
	KafkaPublisher  LifecyclePublisher
}

func NewLoanMatchingService(deps LoanMatchingDeps) *LoanMatchingService {
	return &LoanMatchingService{
		workerPool:      deps.WorkerPool,
		userRepo:        deps.UserRepo,
		loanRequestRepo: deps.LoanRequestRepo,
		lenderOfferRepo: deps.LenderOfferRepo,
		availableRepo:   deps.AvailableRepo,
		matchRepo:       deps.MatchRepo,
		lendingRepo:     deps.LendingRepo,
		borrowingRepo:   deps.BorrowingRepo,
		tierService:     deps.TierService,
		creditScorer:    deps.CreditScorer,
		scoreCache:      deps.ScoreCache,
		notifier:        deps.Notifier,
		kafkaPublisher:  deps.KafkaPublisher,
	}
}

// CreateLoanRequest validates the ask, derives collateral from the
// requester's current tier and the live XLM price, and opens a pending
// request.
func (s *LoanMatchingService) CreateLoanRequest(ctx context.Context, borrowerAddress string, amountUSDC float64, durationDays int) (*models.LoanRequest, error) {
	if ok, err := utils.IsValidAmount(amountUSDC); !ok {
		return nil, err
	}
	if ok, err := utils.IsValidDuration(durationDays); !ok {
		return nil, err
	}

	score, err := s.creditScorer.GetCreditScore(ctx, borrowerAddress, false)
	if err != nil {
		return nil, err
	}

	tier := s.tierService.ResolveCreditTier(score.Score)
	collateralXLM, err := s.tierService.CalculateCollateral(ctx, amountUSDC, tier.LTV)
	if err != nil {
		return nil, err
	}

	request := common.SerializeLoanRequest(borrowerAddress, score.Score, amountUSDC, collateralXLM, tier.LTV, tier.APR, durationDays)
	if err := s.loanRequestRepo.InsertLoanRequest(ctx, request); err != nil {
		return nil, err
	}

	if err := s.userRepo.ApplyLoanTotals(ctx, borrowerAddress, 0, 0, 1, 0); err != nil {
		logger.Error(ctx, "Failed to bump active loans for %s: %v", borrowerAddress, err)
	}

	s.publishLifecycle(ctx, models.LoanLifecycleEvent{
		GUID:            request.GUID,
		EventType:       consts.EventLoanRequested,
		RequestID:       request.ID.Hex(),
		BorrowerAddress: borrowerAddress,
		AmountUSDC:      amountUSDC,
		APR:             tier.APR,
		DurationDays:    durationDays,
		Status:          request.Status,
	}, func(eventCtx context.Context) {
		if err := s.loanRequestRepo.MarkPublishedToKafka(eventCtx, request.ID); err != nil {
			logger.Error(eventCtx, "Failed to flag loan request %s as published: %v", request.ID.Hex(), err)
		}
	})

	s.notifyAsync(borrowerAddress, consts.NotifyLoanRequestCreated, map[string]string{
		"requestId": request.ID.Hex(),
	})

	logger.Info(ctx, "Loan request %s created for %s", request.ID.Hex(), borrowerAddress)
	return &request, nil
}

// CancelLoanRequest withdraws a pending ask. Only the borrower who opened
// the request may pull it, and a request that already got funded stays put.
func (s *LoanMatchingService) CancelLoanRequest(ctx context.Context, requestID primitive.ObjectID, borrowerAddress string) (*models.LoanRequest, error) {
	request, err := s.loanRequestRepo.LoanRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.BorrowerAddress != borrowerAddress {
		return nil, consts.ErrorLoanRequestNotFound
	}

	transitioned, err := s.loanRequestRepo.TransitionStatus(ctx, requestID, consts.LoanRequestPending, bson.M{
		"status": consts.LoanRequestCancelled,
	})
	if err != nil {
		return nil, err
	}
	if !transitioned {
		return nil, consts.ErrorLoanRequestNotPending
	}

	if err := s.userRepo.ApplyLoanTotals(ctx, borrowerAddress, 0, 0, -1, 0); err != nil {
		logger.Error(ctx, "Failed to drop active loans for %s: %v", borrowerAddress, err)
	}

	s.publishLifecycle(ctx, models.LoanLifecycleEvent{
		GUID:            request.GUID,
		EventType:       consts.EventLoanCancelled,
		RequestID:       requestID.Hex(),
		BorrowerAddress: borrowerAddress,
		AmountUSDC:      request.AmountUSDC,
		APR:             request.APR,
		DurationDays:    request.DurationDays,
		Status:          consts.LoanRequestCancelled,
	}, nil)

	s.notifyAsync(borrowerAddress, consts.NotifyLoanRequestCancelled, map[string]string{
		"requestId": requestID.Hex(),
	})

	request.Status = consts.LoanRequestCancelled
	logger.Info(ctx, "Loan request %s cancelled by %s", requestID.Hex(), borrowerAddress)
	return request, nil
}

// FundLoan moves a pending request to funded and materializes the match with
// its two transaction records. The conditional update decides the winner
// between concurrent funders.
func (s *LoanMatchingService) FundLoan(ctx context.Context, requestID primitive.ObjectID, funderAddress string) (*models.Match, error) {
	request, err := s.loanRequestRepo.LoanRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.BorrowerAddress == funderAddress {
		return nil, consts.ErrorSelfDealing
	}
	if _, err := s.userRepo.UserByWallet(ctx, funderAddress); err != nil {
		return nil, err
	}

	dueDate := common.DueDate(time.Now(), request.DurationDays)
	transitioned, err := s.loanRequestRepo.TransitionStatus(ctx, requestID, consts.LoanRequestPending, bson.M{
		"status":   consts.LoanRequestFunded,
		"fundedBy": funderAddress,
		"dueDate":  dueDate,
	})
	if err != nil {
		return nil, err
	}
	if !transitioned {
		return nil, consts.ErrorLoanRequestNotPending
	}

	match, lending, borrowing := common.SerializeMatch(requestID, primitive.NilObjectID, funderAddress, request.BorrowerAddress, request.AmountUSDC, request.APR, request.DurationDays)
	if err := s.persistMatch(ctx, match, lending, borrowing); err != nil {
		return nil, err
	}

	s.applyMatchTotals(ctx, funderAddress, request.BorrowerAddress, request.AmountUSDC)

	s.publishLifecycle(ctx, models.LoanLifecycleEvent{
		GUID:            match.GUID,
		EventType:       consts.EventLoanFunded,
		RequestID:       requestID.Hex(),
		MatchID:         match.ID.Hex(),
		LenderAddress:   funderAddress,
		BorrowerAddress: request.BorrowerAddress,
		AmountUSDC:      request.AmountUSDC,
		APR:             request.APR,
		DurationDays:    request.DurationDays,
		Status:          consts.LoanRequestFunded,
	}, func(eventCtx context.Context) {
		s.flagTransactionsPublished(eventCtx, lending.ID, borrowing.ID)
	})

	s.notifyAsync(request.BorrowerAddress, consts.NotifyLoanFunded, map[string]string{"matchId": match.ID.Hex()})
	s.notifyAsync(funderAddress, consts.NotifyLoanFunded, map[string]string{"matchId": match.ID.Hex()})

	logger.Info(ctx, "Loan request %s funded by %s, match %s", requestID.Hex(), funderAddress, match.ID.Hex())
	return &match, nil
}

// TakeLoan lets a borrower accept an offer-derived available loan. Eligibility
// against the offer's minimum score is checked with a fresh-enough score.
func (s *LoanMatchingService) TakeLoan(ctx context.Context, availableLoanID primitive.ObjectID, takerAddress string) (*models.Match, error) {
	loan, err := s.availableRepo.AvailableLoanByID(ctx, availableLoanID)
	if err != nil {
		return nil, err
	}
	if loan.LenderAddress == takerAddress {
		return nil, consts.ErrorSelfDealing
	}

	score, err := s.creditScorer.GetCreditScore(ctx, takerAddress, false)
	if err != nil {
		return nil, err
	}
	if score.Score < loan.MinCreditScore {
		return nil, consts.ErrorScoreNotEligible
	}

	taken, err := s.availableRepo.TakeAvailableLoan(ctx, availableLoanID, takerAddress)
	if err != nil {
		return nil, err
	}
	if !taken {
		return nil, consts.ErrorAvailableLoanTaken
	}

	if _, err := s.lenderOfferRepo.DeactivateOffer(ctx, loan.OfferID); err != nil {
		logger.Error(ctx, "Failed to deactivate offer %s: %v", loan.OfferID.Hex(), err)
	}

	match, lending, borrowing := common.SerializeMatch(primitive.NilObjectID, availableLoanID, loan.LenderAddress, takerAddress, loan.AmountUSDC, loan.APR, loan.DurationDays)
	if err := s.persistMatch(ctx, match, lending, borrowing); err != nil {
		return nil, err
	}

	s.applyMatchTotals(ctx, loan.LenderAddress, takerAddress, loan.AmountUSDC)

	s.publishLifecycle(ctx, models.LoanLifecycleEvent{
		GUID:            match.GUID,
		EventType:       consts.EventLoanTaken,
		MatchID:         match.ID.Hex(),
		LenderAddress:   loan.LenderAddress,
		BorrowerAddress: takerAddress,
		AmountUSDC:      loan.AmountUSDC,
		APR:             loan.APR,
		DurationDays:    loan.DurationDays,
		Status:          consts.AvailableLoanTaken,
	}, func(eventCtx context.Context) {
		s.flagTransactionsPublished(eventCtx, lending.ID, borrowing.ID)
	})

	s.notifyAsync(takerAddress, consts.NotifyLoanTaken, map[string]string{"matchId": match.ID.Hex()})
	s.notifyAsync(loan.LenderAddress, consts.NotifyLoanTaken, map[string]string{"matchId": match.ID.Hex()})

	logger.Info(ctx, "Available loan %s taken by %s, match %s", availableLoanID.Hex(), takerAddress, match.ID.Hex())
	return &match, nil
}

// CreateLenderOffer persists the standing offer and its market-facing
// available loan in one go.
func (s *LoanMatchingService) CreateLenderOffer(ctx context.Context, lenderAddress string, amountUSDC float64, interestRate float64, maxDurationDays int, minCreditScore int) (*models.LenderOffer, error) {
	if ok, err := utils.IsValidAmount(amountUSDC); !ok {
		return nil, err
	}
	if ok, err := utils.IsValidInterestRate(interestRate); !ok {
		return nil, err
	}
	if ok, err := utils.IsValidDuration(maxDurationDays); !ok {
		return nil, err
	}
	if ok, err := utils.IsValidMinCreditScore(minCreditScore); !ok {
		return nil, err
	}
	if _, err := s.userRepo.UserByWallet(ctx, lenderAddress); err != nil {
		return nil, err
	}

	offer := common.SerializeLenderOffer(lenderAddress, amountUSDC, interestRate, maxDurationDays, minCreditScore)
	if err := s.lenderOfferRepo.InsertLenderOffer(ctx, offer); err != nil {
		return nil, err
	}

	available := common.SerializeAvailableLoan(offer, consts.DefaultMaxLTV)
	if err := s.availableRepo.InsertAvailableLoan(ctx, available); err != nil {
		return nil, err
	}

	s.publishLifecycle(ctx, models.LoanLifecycleEvent{
		EventType:     consts.EventOfferCreated,
		LenderAddress: lenderAddress,
		AmountUSDC:    amountUSDC,
		APR:           interestRate,
		DurationDays:  maxDurationDays,
		Status:        offer.Status,
	}, nil)

	s.notifyAsync(lenderAddress, consts.NotifyOfferCreated, map[string]string{"offerId": offer.ID.Hex()})

	logger.Info(ctx, "Lender offer %s created by %s", offer.ID.Hex(), lenderAddress)
	return &offer, nil
}

// RepayLoan settles an active match: both transaction records complete, both
// parties' active-loan counters drop, the borrower's reputation rises, and
// the source request (if any) moves to repaid.
func (s *LoanMatchingService) RepayLoan(ctx context.Context, matchID primitive.ObjectID) (*models.Match, error) {
	return s.settleMatch(ctx, matchID, consts.MatchCompleted, consts.TransactionCompleted, consts.LoanRequestRepaid, consts.EventLoanRepaid, consts.NotifyLoanRepaid, 1)
}

// MarkDefaulted records a default on an active match. Reputation takes the
// opposite hit of a repayment.
func (s *LoanMatchingService) MarkDefaulted(ctx context.Context, matchID primitive.ObjectID) (*models.Match, error) {
	return s.settleMatch(ctx, matchID, consts.MatchDefaulted, consts.TransactionDefaulted, consts.LoanRequestDefaulted, consts.EventLoanDefaulted, consts.NotifyLoanDefaulted, -1)
}

func (s *LoanMatchingService) settleMatch(ctx context.Context, matchID primitive.ObjectID, matchStatus, txnStatus, requestStatus, eventType, notifyEvent string, reputationDelta int) (*models.Match, error) {
	match, err := s.matchRepo.MatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	transitioned, err := s.matchRepo.TransitionStatus(ctx, matchID, consts.MatchActive, matchStatus)
	if err != nil {
		return nil, err
	}
	if !transitioned {
		return nil, consts.ErrorMatchNotActive
	}

	if _, err := s.lendingRepo.TransitionStatus(ctx, matchID, consts.TransactionActive, txnStatus); err != nil {
		logger.Error(ctx, "Failed to settle lending transaction for match %s: %v", matchID.Hex(), err)
	}
	if _, err := s.borrowingRepo.TransitionStatus(ctx, matchID, consts.TransactionActive, txnStatus); err != nil {
		logger.Error(ctx, "Failed to settle borrowing transaction for match %s: %v", matchID.Hex(), err)
	}

	if !match.RequestID.IsZero() {
		if _, err := s.loanRequestRepo.TransitionStatus(ctx, match.RequestID, consts.LoanRequestFunded, bson.M{
			"status": requestStatus,
		}); err != nil {
			logger.Error(ctx, "Failed to settle loan request %s: %v", match.RequestID.Hex(), err)
		}
	}

	if err := s.userRepo.ApplyLoanTotals(ctx, match.BorrowerAddress, 0, 0, -1, reputationDelta); err != nil {
		logger.Error(ctx, "Failed to settle totals for %s: %v", match.BorrowerAddress, err)
	}
	if err := s.userRepo.ApplyLoanTotals(ctx, match.LenderAddress, 0, 0, -1, 0); err != nil {
		logger.Error(ctx, "Failed to settle totals for %s: %v", match.LenderAddress, err)
	}

	s.invalidateScores(ctx, match.LenderAddress, match.BorrowerAddress)

	s.publishLifecycle(ctx, models.LoanLifecycleEvent{
		GUID:            match.GUID,
		EventType:       eventType,
		MatchID:         matchID.Hex(),
		LenderAddress:   match.LenderAddress,
		BorrowerAddress: match.BorrowerAddress,
		AmountUSDC:      match.AmountUSDC,
		APR:             match.APR,
		DurationDays:    match.DurationDays,
		Status:          matchStatus,
	}, nil)

	s.notifyAsync(match.BorrowerAddress, notifyEvent, map[string]string{"matchId": matchID.Hex()})
	s.notifyAsync(match.LenderAddress, notifyEvent, map[string]string{"matchId": matchID.Hex()})

	match.Status = matchStatus
	logger.Info(ctx, "Match %s settled as %s", matchID.Hex(), matchStatus)
	return match, nil
}

func (s *LoanMatchingService) OpenLoanRequests(ctx context.Context, limit int64) ([]models.LoanRequest, error) {
	return s.loanRequestRepo.OpenLoanRequests(ctx, limit)
}

func (s *LoanMatchingService) LoanRequestsByBorrower(ctx context.Context, borrowerAddress string) ([]models.LoanRequest, error) {
	return s.loanRequestRepo.LoanRequestsByBorrower(ctx, borrowerAddress)
}

func (s *LoanMatchingService) ActiveLenderOffers(ctx context.Context, limit int64) ([]models.LenderOffer, error) {
	return s.lenderOfferRepo.ActiveLenderOffers(ctx, limit)
}

func (s *LoanMatchingService) LenderOffersByLender(ctx context.Context, lenderAddress string) ([]models.LenderOffer, error) {
	return s.lenderOfferRepo.LenderOffersByLender(ctx, lenderAddress)
}

func (s *LoanMatchingService) AvailableLoans(ctx context.Context, limit int64) ([]models.AvailableLoan, error) {
	return s.availableRepo.AvailableLoans(ctx, limit)
}

func (s *LoanMatchingService) MatchByID(ctx context.Context, id primitive.ObjectID) (*models.Match, error) {
	return s.matchRepo.MatchByID(ctx, id)
}

// MyLoans merges both transaction collections into the per-user ledger view.
// Active entries past their due date surface as overdue without touching the
// stored status; settlement still decides repaid vs defaulted.
func (s *LoanMatchingService) MyLoans(ctx context.Context, walletAddress string) ([]models.MyLoan, error) {
	lending, err := s.lendingRepo.LendingTransactionsByLender(ctx, walletAddress)
	if err != nil {
		return nil, err
	}
	borrowing, err := s.borrowingRepo.BorrowingTransactionsByBorrower(ctx, walletAddress)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	loans := make([]models.MyLoan, 0, len(lending)+len(borrowing))
	for _, txn := range lending {
		loans = append(loans, models.MyLoan{
			ID:           txn.ID,
			MatchID:      txn.MatchID,
			Type:         consts.LoanTypeLent,
			Counterparty: txn.BorrowerAddress,
			AmountUSDC:   txn.AmountUSDC,
			APR:          txn.APR,
			DurationDays: txn.DurationDays,
			StartDate:    txn.StartDate,
			DueDate:      txn.DueDate,
			Status:       displayStatus(txn.Status, txn.DueDate, now),
			Interest:     txn.InterestEarned,
		})
	}
	for _, txn := range borrowing {
		loans = append(loans, models.MyLoan{
			ID:           txn.ID,
			MatchID:      txn.MatchID,
			Type:         consts.LoanTypeBorrowed,
			Counterparty: txn.LenderAddress,
			AmountUSDC:   txn.AmountUSDC,
			APR:          txn.APR,
			DurationDays: txn.DurationDays,
			StartDate:    txn.StartDate,
			DueDate:      txn.DueDate,
			Status:       displayStatus(txn.Status, txn.DueDate, now),
			Interest:     txn.InterestOwed,
		})
	}
	return loans, nil
}

func displayStatus(status string, dueDate, now time.Time) string {
	if status == consts.TransactionActive && dueDate.Before(now) {
		return consts.TransactionOverdue
	}
	return status
}

func (s *LoanMatchingService) persistMatch(ctx context.Context, match models.Match, lending models.LendingTransaction, borrowing models.BorrowingTransaction) error {
	if err := s.matchRepo.InsertMatch(ctx, match); err != nil {
		return err
	}
	if err := s.lendingRepo.InsertLendingTransaction(ctx, lending); err != nil {
		return err
	}
	if err := s.borrowingRepo.InsertBorrowingTransaction(ctx, borrowing); err != nil {
		return err
	}
	return nil
}

func (s *LoanMatchingService) applyMatchTotals(ctx context.Context, lenderAddress, borrowerAddress string, amountUSDC float64) {
	if err := s.userRepo.ApplyLoanTotals(ctx, lenderAddress, amountUSDC, 0, 1, 0); err != nil {
		logger.Error(ctx, "Failed to apply lender totals for %s: %v", lenderAddress, err)
	}
	if err := s.userRepo.ApplyLoanTotals(ctx, borrowerAddress, 0, amountUSDC, 0, 0); err != nil {
		logger.Error(ctx, "Failed to apply borrower totals for %s: %v", borrowerAddress, err)
	}
	s.invalidateScores(ctx, lenderAddress, borrowerAddress)
}

func (s *LoanMatchingService) invalidateScores(ctx context.Context, addresses ...string) {
	for _, address := range addresses {
		if err := s.scoreCache.Invalidate(ctx, address); err != nil {
			logger.Warn(ctx, "Failed to invalidate score cache for %s: %v", address, err)
		}
	}
}

// publishLifecycle pushes the Kafka event off the request path. onSuccess
// flips publishedToKafka flags so the retry service skips delivered records.
func (s *LoanMatchingService) publishLifecycle(ctx context.Context, event models.LoanLifecycleEvent, onSuccess func(ctx context.Context)) {
	s.workerPool.Submit(func() {
		eventCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.kafkaPublisher.PublishLoanLifecycle(eventCtx, event); err != nil {
			logger.Error(eventCtx, "Failed to publish %s event: %v", event.EventType, err)
			return
		}
		if onSuccess != nil {
			onSuccess(eventCtx)
		}
	})
}

func (s *LoanMatchingService) flagTransactionsPublished(ctx context.Context, lendingID, borrowingID primitive.ObjectID) {
	if err := s.lendingRepo.MarkPublishedToKafka(ctx, lendingID); err != nil {
		logger.Error(ctx, "Failed to flag lending transaction %s as published: %v", lendingID.Hex(), err)
	}
	if err := s.borrowingRepo.MarkPublishedToKafka(ctx, borrowingID); err != nil {
		logger.Error(ctx, "Failed to flag borrowing transaction %s as published: %v", borrowingID.Hex(), err)
	}
}

func (s *LoanMatchingService) notifyAsync(walletAddress, event string, params map[string]string) {
	s.workerPool.Submit(func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.notifier.NotifyUser(notifyCtx, walletAddress, event, params); err != nil {
			logger.Error(notifyCtx, "Failed to notify %s of %s: %v", walletAddress, event, err)
		}
	})
}
