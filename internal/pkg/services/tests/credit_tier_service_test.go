package tests

import (
	"context"
	"testing"

	"github.com/Kredible-Inc/kredible-lending/internal/pkg/consts"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/pricing"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/services"

	"github.com/stretchr/testify/assert"
)

func TestCreditTierService_ResolveCreditTier(t *testing.T) {
	service := services.NewCreditTierService(pricing.NewStaticPriceFeedWithPrice(0.12))

	tests := []struct {
		name         string
		score        int
		expectedTier string
		expectedLTV  float64
		expectedAPR  float64
	}{
		{name: "top of range", score: 850, expectedTier: consts.TierHigh, expectedLTV: 80, expectedAPR: 6.0},
		{name: "high boundary", score: 700, expectedTier: consts.TierHigh, expectedLTV: 80, expectedAPR: 6.0},
		{name: "just below high", score: 699, expectedTier: consts.TierMidHigh, expectedLTV: 70, expectedAPR: 7.0},
		{name: "mid-high boundary", score: 600, expectedTier: consts.TierMidHigh, expectedLTV: 70, expectedAPR: 7.0},
		{name: "just below mid-high", score: 599, expectedTier: consts.TierMid, expectedLTV: 60, expectedAPR: 8.0},
		{name: "mid boundary", score: 500, expectedTier: consts.TierMid, expectedLTV: 60, expectedAPR: 8.0},
		{name: "just below mid", score: 499, expectedTier: consts.TierLow, expectedLTV: 50, expectedAPR: 9.0},
		{name: "bottom of range", score: 300, expectedTier: consts.TierLow, expectedLTV: 50, expectedAPR: 9.0},
		{name: "below published range", score: 0, expectedTier: consts.TierLow, expectedLTV: 50, expectedAPR: 9.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier := service.ResolveCreditTier(tt.score)
			assert.Equal(t, tt.expectedTier, tier.Tier)
			assert.Equal(t, tt.expectedLTV, tier.LTV)
			assert.Equal(t, tt.expectedAPR, tier.APR)
			assert.NotEmpty(t, tier.Label)
			assert.NotEmpty(t, tier.Color)
		})
	}
}

func TestCreditTierService_NormalizeAPR(t *testing.T) {
	service := services.NewCreditTierService(pricing.NewStaticPriceFeedWithPrice(0.12))

	assert.InDelta(t, 9.0, service.NormalizeAPR(consts.MinCreditScore), 0.001)
	assert.InDelta(t, 6.0, service.NormalizeAPR(consts.MaxCreditScore), 0.001)
	assert.InDelta(t, 7.5, service.NormalizeAPR(575), 0.001)

	// clamped outside the published range
	assert.InDelta(t, 9.0, service.NormalizeAPR(0), 0.001)
	assert.InDelta(t, 6.0, service.NormalizeAPR(1000), 0.001)

	// monotonic: a better score never pays a higher rate
	previous := service.NormalizeAPR(consts.MinCreditScore)
	for score := consts.MinCreditScore + 50; score <= consts.MaxCreditScore; score += 50 {
		current := service.NormalizeAPR(score)
		assert.LessOrEqual(t, current, previous)
		previous = current
	}
}

func TestCreditTierService_CalculateCollateral(t *testing.T) {
	ctx := context.Background()

	t.Run("known quantities", func(t *testing.T) {
		service := services.NewCreditTierService(pricing.NewStaticPriceFeedWithPrice(0.12))
		collateral, err := service.CalculateCollateral(ctx, 1000, 70)
		assert.NoError(t, err)
		assert.InDelta(t, 11904.76, collateral, 0.01)
	})

	t.Run("full LTV", func(t *testing.T) {
		service := services.NewCreditTierService(pricing.NewStaticPriceFeedWithPrice(0.5))
		collateral, err := service.CalculateCollateral(ctx, 100, 100)
		assert.NoError(t, err)
		assert.InDelta(t, 200, collateral, 0.001)
	})

	t.Run("invalid amount", func(t *testing.T) {
		service := services.NewCreditTierService(pricing.NewStaticPriceFeedWithPrice(0.12))
		_, err := service.CalculateCollateral(ctx, 0, 70)
		assert.Equal(t, consts.ErrorInvalidAmount, err)
	})

	t.Run("invalid ltv", func(t *testing.T) {
		service := services.NewCreditTierService(pricing.NewStaticPriceFeedWithPrice(0.12))
		_, err := service.CalculateCollateral(ctx, 1000, 0)
		assert.Equal(t, consts.ErrorInvalidLTV, err)

		_, err = service.CalculateCollateral(ctx, 1000, 101)
		assert.Equal(t, consts.ErrorInvalidLTV, err)
	})

	t.Run("invalid price", func(t *testing.T) {
		service := services.NewCreditTierService(pricing.NewStaticPriceFeedWithPrice(0))
		_, err := service.CalculateCollateral(ctx, 1000, 70)
		assert.Equal(t, consts.ErrorInvalidPrice, err)
	})
}

func TestCreditTierService_GetCreditScoreRange(t *testing.T) {
	service := services.NewCreditTierService(pricing.NewStaticPriceFeedWithPrice(0.12))

	tests := []struct {
		score         int
		expectedRange string
	}{
		{850, "Excellent"},
		{800, "Excellent"},
		{799, "Very Good"},
		{740, "Very Good"},
		{739, "Good"},
		{670, "Good"},
		{669, "Fair"},
		{580, "Fair"},
		{579, "Poor"},
		{300, "Poor"},
	}

	for _, tt := range tests {
		scoreRange := service.GetCreditScoreRange(tt.score)
		assert.Equal(t, tt.expectedRange, scoreRange.Range, "score %d", tt.score)
		assert.NotEmpty(t, scoreRange.Description)
	}
}
