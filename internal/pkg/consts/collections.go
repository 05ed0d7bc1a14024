package consts

const (
	UsersCollection                 = "users"
	LoanRequestsCollection          = "loanRequests"
	LenderOffersCollection          = "lenderOffers"
	AvailableLoansCollection        = "availableLoans"
	MatchesCollection               = "matches"
	LendingTransactionsCollection   = "lendingTransactions"
	BorrowingTransactionsCollection = "borrowingTransactions"
	PendingRegistrationsCollection  = "pendingRegistrations"
)
