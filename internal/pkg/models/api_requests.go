package models

type ConnectWalletRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
}

type CompleteRegistrationRequest struct {
	RequestID string `json:"requestId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type CreateLoanRequestRequest struct {
	BorrowerAddress string  `json:"borrowerAddress" binding:"required"`
	AmountUSDC      float64 `json:"amountUSDC"`
	DurationDays    int     `json:"durationDays"`
}

type CreateLenderOfferRequest struct {
	LenderAddress   string  `json:"lenderAddress" binding:"required"`
	AmountUSDC      float64 `json:"amountUSDC"`
	InterestRate    float64 `json:"interestRate"`
	MaxDurationDays int     `json:"maxDurationDays"`
	MinCreditScore  int     `json:"minCreditScore"`
}

type CancelLoanRequestRequest struct {
	BorrowerAddress string `json:"borrowerAddress" binding:"required"`
}

type FundLoanRequest struct {
	FunderAddress string `json:"funderAddress" binding:"required"`
}

type TakeLoanRequest struct {
	TakerAddress string `json:"takerAddress" binding:"required"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
