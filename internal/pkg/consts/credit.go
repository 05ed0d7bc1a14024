package consts

// Canonical platform score range. The 400-800 range that appeared in early
// mock data is not used anywhere in the backend.
const (
	MinCreditScore = 300
	MaxCreditScore = 850
)

// Fixed factor weights of the credit score engine.
const (
	WeightPaymentHistory    = 0.35
	WeightCreditUtilization = 0.30
	WeightHistoryLength     = 0.15
	WeightCreditMix         = 0.10
	WeightNewCredit         = 0.10
)

// ScoreRecenterOffset shifts the weighted factor sum into the published range
// before clamping.
const ScoreRecenterOffset = 500

const (
	TierHigh    = "High"
	TierMidHigh = "Mid-High"
	TierMid     = "Mid"
	TierLow     = "Low"
)

const (
	FactorPaymentHistory    = "Payment History"
	FactorCreditUtilization = "Credit Utilization"
	FactorHistoryLength     = "Credit History Length"
	FactorCreditMix         = "Credit Mix"
	FactorNewCredit         = "New Credit"
	FactorManualUpdate      = "Manual Update"
)

const (
	ImpactPositive = "positive"
	ImpactNegative = "negative"
	ImpactNeutral  = "neutral"
)

// DefaultMaxLTV is applied to available loans derived from lender offers.
const DefaultMaxLTV = 80
