package services

import (
	"context"

	"github.com/Kredible-Inc/kredible-lending/internal/pkg/common"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/consts"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/logger"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/models"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// UserService owns wallet connection and the two-step registration flow. A
// first-time wallet gets a pending registration keyed by a fresh request id;
// the profile form completes it and only then is the user created.
type UserService struct {
	userRepo     UserRepo
	pendingRepo  PendingRegistrationRepo
	wallet       WalletVerifier
	notifier     NotifierInterface
	creditScorer CreditScorer
}

func NewUserService(userRepo UserRepo, pendingRepo PendingRegistrationRepo, wallet WalletVerifier, notifier NotifierInterface, creditScorer CreditScorer) *UserService {
	return &UserService{
		userRepo:     userRepo,
		pendingRepo:  pendingRepo,
		wallet:       wallet,
		notifier:     notifier,
		creditScorer: creditScorer,
	}
}

// ConnectWalletResult is returned by ConnectWallet: either an existing user
// logged back in, or a registration request id the client must complete.
type ConnectWalletResult struct {
	User                  *models.User `json:"user,omitempty"`
	RegistrationRequestID string       `json:"registrationRequestId,omitempty"`
	NeedsRegistration     bool         `json:"needsRegistration"`
	XLMBalance            float64      `json:"xlmBalance"`
}

func (s *UserService) ConnectWallet(ctx context.Context, walletAddress string) (*ConnectWalletResult, error) {
	walletAddress = utils.NormalizeWalletAddress(walletAddress)
	if ok, err := utils.IsValidStellarAddress(walletAddress); !ok {
		return nil, err
	}
	if err := s.wallet.VerifyAddress(walletAddress); err != nil {
		return nil, err
	}

	balance, err := s.wallet.XLMBalance(ctx, walletAddress)
	if err != nil {
		logger.Warn(ctx, "Failed to load XLM balance for %s: %v", walletAddress, err)
		balance = 0
	}

	user, err := s.userRepo.UserByWallet(ctx, walletAddress)
	if err == nil {
		if err := s.userRepo.SetLoggedIn(ctx, walletAddress, true); err != nil {
			logger.Error(ctx, "Failed to flag login for %s: %v", walletAddress, err)
		}
		user.LoggedIn = true
		logger.Info(ctx, "Wallet %s logged in", walletAddress)
		return &ConnectWalletResult{User: user, XLMBalance: balance}, nil
	}
	if err != consts.ErrorUserNotFound {
		return nil, err
	}

	reg := common.SerializePendingRegistration(walletAddress)
	if err := s.pendingRepo.InsertPendingRegistration(ctx, reg); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Registration %s started for wallet %s", reg.RequestID, walletAddress)
	return &ConnectWalletResult{
		RegistrationRequestID: reg.RequestID,
		NeedsRegistration:     true,
		XLMBalance:            balance,
	}, nil
}

// CompleteRegistration turns a pending registration into a user account. The
// request id expires through the TTL index, so a stale id comes back as
// not-found.
func (s *UserService) CompleteRegistration(ctx context.Context, requestID string, name string, email string, role string) (*models.User, error) {
	reg, err := s.pendingRepo.PendingRegistrationByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if role != consts.RoleBorrower && role != consts.RoleLender {
		role = consts.RoleBoth
	}

	user := common.SerializeUser(reg.WalletAddress, name, email, role)
	if err := s.userRepo.InsertUser(ctx, user); err != nil {
		return nil, err
	}

	if err := s.pendingRepo.DeletePendingRegistration(ctx, requestID); err != nil {
		logger.Warn(ctx, "Failed to delete pending registration %s: %v", requestID, err)
	}

	if _, err := s.creditScorer.GetCreditScore(ctx, user.WalletAddress, true); err != nil {
		logger.Error(ctx, "Failed to compute initial score for %s: %v", user.WalletAddress, err)
	}

	if err := s.notifier.NotifyUser(ctx, user.WalletAddress, consts.NotifyRegistrationDone, nil); err != nil {
		logger.Error(ctx, "Failed to send registration notification for %s: %v", user.WalletAddress, err)
	}

	logger.Info(ctx, "User registered for wallet %s", user.WalletAddress)
	return &user, nil
}

func (s *UserService) GetUser(ctx context.Context, walletAddress string) (*models.User, error) {
	return s.userRepo.UserByWallet(ctx, utils.NormalizeWalletAddress(walletAddress))
}

// UpdateProfile mutates display fields only; balances, counters and scores
// are owned by the matching and scoring services.
func (s *UserService) UpdateProfile(ctx context.Context, walletAddress string, name string, email string, role string) (*models.User, error) {
	walletAddress = utils.NormalizeWalletAddress(walletAddress)
	if _, err := s.userRepo.UserByWallet(ctx, walletAddress); err != nil {
		return nil, err
	}

	set := bson.M{}
	if name != "" {
		set["name"] = name
	}
	if email != "" {
		set["email"] = email
	}
	if role == consts.RoleBorrower || role == consts.RoleLender || role == consts.RoleBoth {
		set["role"] = role
	}

	if len(set) > 0 {
		if err := s.userRepo.UpdateUserByWallet(ctx, walletAddress, set); err != nil {
			return nil, err
		}
	}

	return s.userRepo.UserByWallet(ctx, walletAddress)
}

func (s *UserService) Logout(ctx context.Context, walletAddress string) error {
	walletAddress = utils.NormalizeWalletAddress(walletAddress)
	if _, err := s.userRepo.UserByWallet(ctx, walletAddress); err != nil {
		return err
	}
	return s.userRepo.SetLoggedIn(ctx, walletAddress, false)
}
