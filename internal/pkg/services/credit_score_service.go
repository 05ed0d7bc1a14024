package services

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/Kredible-Inc/kredible-lending/configs"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/common"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/consts"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/logger"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/models"
)

// CreditScoreService computes the five-factor weighted score and manages its
// cached copy on the user document. Sub-score lookups that fail degrade to a
// neutral contribution instead of failing the whole computation; only a
// missing user is an error.
type CreditScoreService struct {
	userRepo        UserRepo
	loanRequestRepo LoanRequestRepo
	lendingRepo     LendingTxnRepo
	borrowingRepo   BorrowingTxnRepo
	scoreCache      ScoreCacheInterface
	notifier        NotifierInterface
	now             func() time.Time
}

func NewCreditScoreService(userRepo UserRepo, loanRequestRepo LoanRequestRepo, lendingRepo LendingTxnRepo, borrowingRepo BorrowingTxnRepo, scoreCache ScoreCacheInterface, notifier NotifierInterface) *CreditScoreService {
	return &CreditScoreService{
		userRepo:        userRepo,
		loanRequestRepo: loanRequestRepo,
		lendingRepo:     lendingRepo,
		borrowingRepo:   borrowingRepo,
		scoreCache:      scoreCache,
		notifier:        notifier,
		now:             time.Now,
	}
}

// CalculateCreditScore recomputes the score from scratch, persists it on the
// user document and refreshes the cache.
func (s *CreditScoreService) CalculateCreditScore(ctx context.Context, walletAddress string) (*models.CreditScore, error) {
	user, err := s.userRepo.UserByWallet(ctx, walletAddress)
	if err != nil {
		return nil, err
	}

	var factors []models.CreditFactor
	var totalScore float64

	paymentHistoryScore := s.paymentHistoryScore(ctx, walletAddress)
	factors = append(factors, models.CreditFactor{
		Name:        consts.FactorPaymentHistory,
		Impact:      impactOf(paymentHistoryScore),
		Description: "Based on completed loan payments",
		Value:       paymentHistoryScore,
	})
	totalScore += paymentHistoryScore * consts.WeightPaymentHistory

	utilizationScore := s.creditUtilizationScore(user)
	factors = append(factors, models.CreditFactor{
		Name:        consts.FactorCreditUtilization,
		Impact:      impactOf(utilizationScore),
		Description: "Based on current borrowing vs total borrowed",
		Value:       utilizationScore,
	})
	totalScore += utilizationScore * consts.WeightCreditUtilization

	historyScore := s.creditHistoryScore(user)
	factors = append(factors, models.CreditFactor{
		Name:        consts.FactorHistoryLength,
		Impact:      impactOrNeutral(historyScore),
		Description: "Based on time since first loan",
		Value:       historyScore,
	})
	totalScore += historyScore * consts.WeightHistoryLength

	mixScore := s.creditMixScore(ctx, walletAddress)
	factors = append(factors, models.CreditFactor{
		Name:        consts.FactorCreditMix,
		Impact:      impactOrNeutral(mixScore),
		Description: "Based on variety of loan types",
		Value:       mixScore,
	})
	totalScore += mixScore * consts.WeightCreditMix

	newCreditScore := s.newCreditScore(ctx, walletAddress)
	factors = append(factors, models.CreditFactor{
		Name:        consts.FactorNewCredit,
		Impact:      impactOf(newCreditScore),
		Description: "Based on recent loan applications",
		Value:       newCreditScore,
	})
	totalScore += newCreditScore * consts.WeightNewCredit

	normalized := int(common.Clamp(
		math.Round(totalScore)+consts.ScoreRecenterOffset,
		consts.MinCreditScore,
		consts.MaxCreditScore,
	))

	creditScore := models.CreditScore{
		Score:       normalized,
		MaxScore:    consts.MaxCreditScore,
		Factors:     factors,
		LastUpdated: s.now(),
	}

	if err := s.userRepo.UpdateCreditScore(ctx, walletAddress, creditScore); err != nil {
		return nil, err
	}
	if err := s.scoreCache.SetScore(ctx, walletAddress, creditScore); err != nil {
		logger.Warn(ctx, "Failed to cache credit score for %s: %v", walletAddress, err)
	}
	if err := s.notifier.NotifyUser(ctx, walletAddress, consts.NotifyScoreRefreshed, map[string]string{
		"score": strconv.Itoa(normalized),
	}); err != nil {
		logger.Warn(ctx, "Failed to send score refresh notification for %s: %v", walletAddress, err)
	}

	logger.Info(ctx, "Credit score recomputed for %s: %d", walletAddress, normalized)
	return &creditScore, nil
}

// GetCreditScore returns the stored score, recomputing it when absent, stale
// or when forceRefresh is set.
func (s *CreditScoreService) GetCreditScore(ctx context.Context, walletAddress string, forceRefresh bool) (*models.CreditScore, error) {
	if forceRefresh {
		return s.CalculateCreditScore(ctx, walletAddress)
	}

	if cached, err := s.scoreCache.GetScore(ctx, walletAddress); err == nil && cached != nil && !s.isStale(&cached.LastUpdated) {
		return cached, nil
	}

	user, err := s.userRepo.UserByWallet(ctx, walletAddress)
	if err != nil {
		return nil, err
	}

	if user.CreditScore == 0 || s.isStale(user.LastCreditScoreUpdate) {
		return s.CalculateCreditScore(ctx, walletAddress)
	}

	if user.CreditScoreDetails != nil {
		return user.CreditScoreDetails, nil
	}

	lastUpdated := s.now()
	if user.LastCreditScoreUpdate != nil {
		lastUpdated = *user.LastCreditScoreUpdate
	}
	return &models.CreditScore{
		Score:       user.CreditScore,
		MaxScore:    consts.MaxCreditScore,
		Factors:     []models.CreditFactor{},
		LastUpdated: lastUpdated,
	}, nil
}

// UpdateCreditScore sets the score directly, clamped into range. Admin and
// test hook.
func (s *CreditScoreService) UpdateCreditScore(ctx context.Context, walletAddress string, score int) (*models.CreditScore, error) {
	clamped := int(common.Clamp(float64(score), consts.MinCreditScore, consts.MaxCreditScore))

	creditScore := models.CreditScore{
		Score:    clamped,
		MaxScore: consts.MaxCreditScore,
		Factors: []models.CreditFactor{
			{
				Name:        consts.FactorManualUpdate,
				Impact:      consts.ImpactNeutral,
				Description: "Credit score updated manually",
				Value:       0,
			},
		},
		LastUpdated: s.now(),
	}

	if err := s.userRepo.UpdateCreditScore(ctx, walletAddress, creditScore); err != nil {
		return nil, err
	}
	if err := s.scoreCache.SetScore(ctx, walletAddress, creditScore); err != nil {
		logger.Warn(ctx, "Failed to cache credit score for %s: %v", walletAddress, err)
	}
	return &creditScore, nil
}

// IsScoreStale reports whether the stored score has outlived the staleness
// window.
func (s *CreditScoreService) IsScoreStale(lastUpdate *time.Time) bool {
	return s.isStale(lastUpdate)
}

func (s *CreditScoreService) isStale(lastUpdate *time.Time) bool {
	if lastUpdate == nil {
		return true
	}
	cutoff := s.now().AddDate(0, 0, -configs.SCORE_STALENESS_DAYS)
	return lastUpdate.Before(cutoff)
}

func (s *CreditScoreService) paymentHistoryScore(ctx context.Context, walletAddress string) float64 {
	transactions, err := s.borrowingRepo.BorrowingTransactionsByBorrower(ctx, walletAddress)
	if err != nil {
		logger.Error(ctx, "Error calculating payment history score: %v", err)
		return 0
	}
	if len(transactions) == 0 {
		return 0
	}

	var completed, defaulted int
	for _, txn := range transactions {
		switch txn.Status {
		case consts.TransactionCompleted:
			completed++
		case consts.TransactionDefaulted:
			defaulted++
		}
	}

	total := float64(len(transactions))
	completedRatio := float64(completed) / total
	defaultedRatio := float64(defaulted) / total

	return common.Clamp(completedRatio*100-defaultedRatio*200, -100, 100)
}

func (s *CreditScoreService) creditUtilizationScore(user *models.User) float64 {
	if user.TotalBorrowed == 0 {
		return 50
	}

	utilizationRatio := user.TotalBorrowed / (user.TotalBorrowed + user.TotalLent)
	switch {
	case utilizationRatio <= 0.3:
		return 100
	case utilizationRatio <= 0.5:
		return 50
	case utilizationRatio <= 0.7:
		return 0
	default:
		return -50
	}
}

func (s *CreditScoreService) creditHistoryScore(user *models.User) float64 {
	if user.CreatedAt.IsZero() {
		return 0
	}

	months := common.MonthsSince(user.CreatedAt, s.now())
	switch {
	case months >= 60:
		return 100
	case months >= 36:
		return 75
	case months >= 24:
		return 50
	case months >= 12:
		return 25
	default:
		return 0
	}
}

func (s *CreditScoreService) creditMixScore(ctx context.Context, walletAddress string) float64 {
	lendingCount, err := s.lendingRepo.CountByLender(ctx, walletAddress)
	if err != nil {
		logger.Error(ctx, "Error calculating credit mix score: %v", err)
		return 0
	}
	borrowingCount, err := s.borrowingRepo.CountByBorrower(ctx, walletAddress)
	if err != nil {
		logger.Error(ctx, "Error calculating credit mix score: %v", err)
		return 0
	}

	hasLending := lendingCount > 0
	hasBorrowing := borrowingCount > 0
	switch {
	case hasLending && hasBorrowing:
		return 100
	case hasLending || hasBorrowing:
		return 50
	default:
		return 0
	}
}

func (s *CreditScoreService) newCreditScore(ctx context.Context, walletAddress string) float64 {
	sixMonthsAgo := s.now().AddDate(0, -6, 0)
	recent, err := s.loanRequestRepo.CountRecentByBorrower(ctx, walletAddress, sixMonthsAgo)
	if err != nil {
		logger.Error(ctx, "Error calculating new credit score: %v", err)
		return 0
	}

	switch {
	case recent == 0:
		return 50
	case recent == 1:
		return 25
	case recent <= 3:
		return 0
	default:
		return -50
	}
}

func impactOf(value float64) string {
	if value >= 0 {
		return consts.ImpactPositive
	}
	return consts.ImpactNegative
}

func impactOrNeutral(value float64) string {
	if value >= 0 {
		return consts.ImpactPositive
	}
	return consts.ImpactNeutral
}
