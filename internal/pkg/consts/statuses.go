package consts

// Loan request state machine: pending -> funded -> repaid, with cancelled
// reachable from pending and defaulted from funded. Both are absorbing.
const (
	LoanRequestPending   = "pending"
	LoanRequestFunded    = "funded"
	LoanRequestRepaid    = "repaid"
	LoanRequestDefaulted = "defaulted"
	LoanRequestCancelled = "cancelled"
)

const (
	OfferActive   = "active"
	OfferInactive = "inactive"
)

const (
	AvailableLoanAvailable = "available"
	AvailableLoanTaken     = "taken"
)

const (
	TransactionActive    = "active"
	TransactionCompleted = "completed"
	TransactionOverdue   = "overdue"
	TransactionDefaulted = "defaulted"
)

const (
	MatchActive    = "active"
	MatchCompleted = "completed"
	MatchDefaulted = "defaulted"
)

const (
	LoanTypeLent     = "lent"
	LoanTypeBorrowed = "borrowed"
)

const (
	RoleBorrower = "borrower"
	RoleLender   = "lender"
	RoleBoth     = "both"
)

// Kafka lifecycle event types.
const (
	EventLoanRequested = "LOAN_REQUESTED"
	EventLoanCancelled = "LOAN_CANCELLED"
	EventLoanFunded    = "LOAN_FUNDED"
	EventLoanTaken     = "LOAN_TAKEN"
	EventLoanRepaid    = "LOAN_REPAID"
	EventLoanDefaulted = "LOAN_DEFAULTED"
	EventOfferCreated  = "OFFER_CREATED"
)
