package services

import (
	"context"

	"github.com/Kredible-Inc/kredible-lending/internal/pkg/common"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/consts"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/logger"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/models"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/pricing"
)

// CreditTierService maps credit scores to loan terms and converts USDC
// amounts into XLM collateral requirements.
type CreditTierService struct {
	priceFeed pricing.PriceFeed
}

func NewCreditTierService(priceFeed pricing.PriceFeed) *CreditTierService {
	return &CreditTierService{priceFeed: priceFeed}
}

// ResolveCreditTier is total over int: every score gets a tier, scores below
// the lowest band included.
func (s *CreditTierService) ResolveCreditTier(score int) models.CreditTier {
	switch {
	case score >= 700:
		return models.CreditTier{
			Tier:    consts.TierHigh,
			LTV:     80,
			APR:     6.0,
			Label:   "Excellent",
			Color:   "text-emerald-400",
			BgColor: "bg-emerald-900/20 border-emerald-500/30",
		}
	case score >= 600:
		return models.CreditTier{
			Tier:    consts.TierMidHigh,
			LTV:     70,
			APR:     7.0,
			Label:   "Good",
			Color:   "text-blue-400",
			BgColor: "bg-blue-900/20 border-blue-500/30",
		}
	case score >= 500:
		return models.CreditTier{
			Tier:    consts.TierMid,
			LTV:     60,
			APR:     8.0,
			Label:   "Fair",
			Color:   "text-yellow-400",
			BgColor: "bg-yellow-900/20 border-yellow-500/30",
		}
	default:
		return models.CreditTier{
			Tier:    consts.TierLow,
			LTV:     50,
			APR:     9.0,
			Label:   "Building",
			Color:   "text-red-400",
			BgColor: "bg-red-900/20 border-red-500/30",
		}
	}
}

// NormalizeAPR maps a score to a continuous APR between the best and worst
// tier rates, better scores earning lower rates.
func (s *CreditTierService) NormalizeAPR(score int) float64 {
	const minAPR, maxAPR = 6.0, 9.0
	normalized := common.Clamp(
		float64(score-consts.MinCreditScore)/float64(consts.MaxCreditScore-consts.MinCreditScore),
		0, 1,
	)
	return maxAPR - normalized*(maxAPR-minAPR)
}

// CalculateCollateral returns the XLM that must be locked to borrow
// amountUSDC at the given LTV percentage.
func (s *CreditTierService) CalculateCollateral(ctx context.Context, amountUSDC float64, ltv float64) (float64, error) {
	if amountUSDC <= 0 {
		return 0, consts.ErrorInvalidAmount
	}
	if ltv <= 0 || ltv > 100 {
		return 0, consts.ErrorInvalidLTV
	}

	price, err := s.priceFeed.XLMPriceUSDC(ctx)
	if err != nil {
		logger.Error(ctx, "Failed to fetch XLM price: %v", err)
		return 0, err
	}
	if price <= 0 {
		return 0, consts.ErrorInvalidPrice
	}

	collateralUSDC := amountUSDC / (ltv / 100)
	return collateralUSDC / price, nil
}

// GetCreditScoreRange describes where a score sits on the published scale.
func (s *CreditTierService) GetCreditScoreRange(score int) models.ScoreRange {
	switch {
	case score >= 800:
		return models.ScoreRange{Range: "Excellent", Description: "Very low risk borrower", Color: "green"}
	case score >= 740:
		return models.ScoreRange{Range: "Very Good", Description: "Low risk borrower", Color: "green"}
	case score >= 670:
		return models.ScoreRange{Range: "Good", Description: "Moderate risk borrower", Color: "yellow"}
	case score >= 580:
		return models.ScoreRange{Range: "Fair", Description: "Higher risk borrower", Color: "orange"}
	default:
		return models.ScoreRange{Range: "Poor", Description: "High risk borrower", Color: "red"}
	}
}
