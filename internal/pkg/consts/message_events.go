package consts

// Notification events pushed to the Pub/Sub topic.
const (
	NotifyLoanRequestCreated   = "LOAN_REQUEST_CREATED"
	NotifyLoanRequestCancelled = "LOAN_REQUEST_CANCELLED"
	NotifyLoanFunded           = "LOAN_FUNDED"
	NotifyLoanTaken            = "LOAN_TAKEN"
	NotifyLoanRepaid           = "LOAN_REPAID"
	NotifyLoanDefaulted        = "LOAN_DEFAULTED"
	NotifyOfferCreated         = "LENDER_OFFER_CREATED"
	NotifyScoreRefreshed       = "CREDIT_SCORE_REFRESHED"
	NotifyRegistrationDone     = "REGISTRATION_COMPLETED"
)
