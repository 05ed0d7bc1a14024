package consts

import "github.com/Kredible-Inc/kredible-lending/internal/pkg/models"

var (
	ErrorInvalidAmount = &models.CustomError{
		Code:    "KREDIBLE_LENDING_VALIDATION_AMOUNT_INVALID",
		Message: "Amount must be greater than zero",
	}
	ErrorInvalidDuration = &models.CustomError{
		Code:    "KREDIBLE_LENDING_VALIDATION_DURATION_INVALID",
		Message: "Duration must be greater than zero",
	}
	ErrorInvalidRate = &models.CustomError{
		Code:    "KREDIBLE_LENDING_VALIDATION_INTEREST_RATE_INVALID",
		Message: "Interest rate must be greater than zero",
	}
	ErrorInvalidMinScore = &models.CustomError{
		Code:    "KREDIBLE_LENDING_VALIDATION_MIN_SCORE_OUT_OF_RANGE",
		Message: "Minimum credit score outside the platform score range",
	}
	ErrorInvalidLTV = &models.CustomError{
		Code:    "KREDIBLE_LENDING_VALIDATION_LTV_INVALID",
		Message: "LTV must be within (0,100]",
	}
	ErrorInvalidPrice = &models.CustomError{
		Code:    "KREDIBLE_LENDING_VALIDATION_COLLATERAL_PRICE_INVALID",
		Message: "Collateral price must be greater than zero",
	}
	ErrorWalletAddressInvalid = &models.CustomError{
		Code:    "KREDIBLE_LENDING_VALIDATION_WALLET_ADDRESS_FORMAT_INVALID",
		Message: "Wallet address is not a valid Stellar public key",
	}
	ErrorUserNotFound = &models.CustomError{
		Code:    "KREDIBLE_LENDING_USER_NOT_FOUND",
		Message: "User not found",
	}
	ErrorLoanRequestNotFound = &models.CustomError{
		Code:    "KREDIBLE_LENDING_LOAN_REQUEST_NOT_FOUND",
		Message: "Loan request not found",
	}
	ErrorLoanRequestNotPending = &models.CustomError{
		Code:    "KREDIBLE_LENDING_LOAN_REQUEST_NOT_PENDING",
		Message: "Loan request is not in pending status",
	}
	ErrorAvailableLoanNotFound = &models.CustomError{
		Code:    "KREDIBLE_LENDING_AVAILABLE_LOAN_NOT_FOUND",
		Message: "Available loan not found",
	}
	ErrorAvailableLoanTaken = &models.CustomError{
		Code:    "KREDIBLE_LENDING_AVAILABLE_LOAN_ALREADY_TAKEN",
		Message: "Available loan already taken",
	}
	ErrorOfferNotFound = &models.CustomError{
		Code:    "KREDIBLE_LENDING_LENDER_OFFER_NOT_FOUND",
		Message: "Lender offer not found",
	}
	ErrorMatchNotFound = &models.CustomError{
		Code:    "KREDIBLE_LENDING_MATCH_NOT_FOUND",
		Message: "Match not found",
	}
	ErrorMatchNotActive = &models.CustomError{
		Code:    "KREDIBLE_LENDING_MATCH_NOT_ACTIVE",
		Message: "Match is not in active status",
	}
	ErrorScoreNotEligible = &models.CustomError{
		Code:    "KREDIBLE_LENDING_VALIDATION_CREDIT_SCORE_NOT_ELIGIBLE",
		Message: "Borrower credit score below the offer minimum",
	}
	ErrorRegistrationNotFound = &models.CustomError{
		Code:    "KREDIBLE_LENDING_REGISTRATION_REQUEST_NOT_FOUND",
		Message: "Registration request not found or expired",
	}
	ErrorSelfDealing = &models.CustomError{
		Code:    "KREDIBLE_LENDING_VALIDATION_SELF_DEALING",
		Message: "Borrower and lender must be different wallets",
	}
)
