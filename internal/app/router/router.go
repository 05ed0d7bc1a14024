package router

import (
	"time"

	"github.com/Kredible-Inc/kredible-lending/configs"
	"github.com/Kredible-Inc/kredible-lending/internal/app/handlers"
	"github.com/Kredible-Inc/kredible-lending/internal/app/middleware"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/kafka/producer"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/notification"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/pricing"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/pubsub"
	kredibleredis "github.com/Kredible-Inc/kredible-lending/internal/pkg/redis"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/services"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/store"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/utils/worker"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/wallet"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
)

func SetupRouter(workerPool *worker.WorkerPool, redisClient *redis.Client, pubsubPublisher *pubsub.PubSubPublisher) *gin.Engine {

	r := gin.Default()
	meter := otel.Meter(configs.SERVICE_NAME)
	r.Use(otelgin.Middleware(configs.SERVICE_NAME))
	r.Use(middleware.NewMetricMiddleware(meter))
	r.Use(middleware.AttachRequestDetails())

	// Repositories
	userRepo := store.NewUserRepository()
	loanRequestRepo := store.NewLoanRequestRepository()
	lenderOfferRepo := store.NewLenderOfferRepository()
	availableLoanRepo := store.NewAvailableLoanRepository()
	matchRepo := store.NewMatchRepository()
	lendingTxnRepo := store.NewLendingTransactionRepository()
	borrowingTxnRepo := store.NewBorrowingTransactionRepository()
	pendingRegistrationRepo := store.NewPendingRegistrationRepository()

	scoreCache := kredibleredis.NewScoreCache(redisClient, time.Duration(configs.SCORE_STALENESS_DAYS)*24*time.Hour)
	priceFeed := pricing.NewCachedPriceFeed(redisClient, pricing.NewStaticPriceFeed())
	stellarWallet := wallet.NewStellarWallet()
	notificationService := notification.NewNotificationService(pubsubPublisher)
	kafkaService := producer.NewKafkaService()

	// Services
	tierService := services.NewCreditTierService(priceFeed)
	creditScoreService := services.NewCreditScoreService(userRepo, loanRequestRepo, lendingTxnRepo, borrowingTxnRepo, scoreCache, notificationService)
	matchingService := services.NewLoanMatchingService(services.LoanMatchingDeps{
		WorkerPool:      workerPool,
		UserRepo:        userRepo,
		LoanRequestRepo: loanRequestRepo,
		LenderOfferRepo: lenderOfferRepo,
		AvailableRepo:   availableLoanRepo,
		MatchRepo:       matchRepo,
		LendingRepo:     lendingTxnRepo,
		BorrowingRepo:   borrowingTxnRepo,
		TierService:     tierService,
		CreditScorer:    creditScoreService,
		ScoreCache:      scoreCache,
		Notifier:        notificationService,
		KafkaPublisher:  kafkaService,
	})
	userService := services.NewUserService(userRepo, pendingRegistrationRepo, stellarWallet, notificationService, creditScoreService)
	kafkaRetryService := producer.NewKafkaRetryService(lendingTxnRepo, borrowingTxnRepo)

	// Handlers
	userHandler := handlers.NewUserHandler(userService)
	creditScoreHandler := handlers.NewCreditScoreHandler(creditScoreService, tierService)
	loanRequestHandler := handlers.NewLoanRequestHandler(matchingService)
	lenderOfferHandler := handlers.NewLenderOfferHandler(matchingService)
	matchHandler := handlers.NewMatchHandler(matchingService)
	kafkaRetryHandler := handlers.NewKafkaRetryHandler(kafkaRetryService)

	r.POST("/kredible/users/connect", userHandler.ConnectWallet)
	r.POST("/kredible/users/register", userHandler.CompleteRegistration)
	r.GET("/kredible/users/:walletAddress", userHandler.GetUser)
	r.PUT("/kredible/users/:walletAddress", userHandler.UpdateProfile)
	r.POST("/kredible/users/:walletAddress/logout", userHandler.Logout)
	r.GET("/kredible/users/:walletAddress/loans", matchHandler.MyLoans)

	r.GET("/kredible/users/:walletAddress/credit-score", creditScoreHandler.GetCreditScore)
	r.PUT("/kredible/users/:walletAddress/credit-score", creditScoreHandler.UpdateCreditScore)
	r.GET("/kredible/users/:walletAddress/credit-tier", creditScoreHandler.GetCreditTier)

	r.POST("/kredible/loan-requests", loanRequestHandler.CreateLoanRequest)
	r.GET("/kredible/loan-requests", loanRequestHandler.OpenLoanRequests)
	r.GET("/kredible/loan-requests/borrower/:walletAddress", loanRequestHandler.LoanRequestsByBorrower)
	r.POST("/kredible/loan-requests/:id/fund", loanRequestHandler.FundLoan)
	r.POST("/kredible/loan-requests/:id/cancel", loanRequestHandler.CancelLoanRequest)

	r.POST("/kredible/lender-offers", lenderOfferHandler.CreateLenderOffer)
	r.GET("/kredible/lender-offers", lenderOfferHandler.ActiveLenderOffers)
	r.GET("/kredible/lender-offers/lender/:walletAddress", lenderOfferHandler.LenderOffersByLender)
	r.GET("/kredible/available-loans", lenderOfferHandler.AvailableLoans)
	r.POST("/kredible/available-loans/:id/take", lenderOfferHandler.TakeLoan)

	r.GET("/kredible/matches/:id", matchHandler.GetMatch)
	r.POST("/kredible/matches/:id/repay", matchHandler.RepayLoan)
	r.POST("/kredible/matches/:id/default", matchHandler.MarkDefaulted)

	r.GET("/kredible/kafkaRetry", kafkaRetryHandler.RetryLoanLifecycleMessages)

	r.GET("/kredible/Test", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"message": "Health Check"})
	})

	return r
}
