package wallet

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/Kredible-Inc/kredible-lending/configs"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/consts"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/logger"

	"github.com/stellar/go/clients/horizon"
	"github.com/stellar/go/keypair"
)

// StellarWallet talks to Horizon for on-chain lookups and key handling. The
// platform never holds user secrets; only public keys pass through here.
type StellarWallet struct {
	client *horizon.Client
}

func NewStellarWallet() *StellarWallet {
	return &StellarWallet{
		client: &horizon.Client{
			URL:  configs.HORIZON_URL,
			HTTP: &http.Client{Timeout: 20 * time.Second},
		},
	}
}

// VerifyAddress checks that the address decodes as a Stellar public key, not
// just that it matches the shape regex.
func (w *StellarWallet) VerifyAddress(address string) error {
	kp, err := keypair.Parse(address)
	if err != nil {
		return consts.ErrorWalletAddressInvalid
	}
	if kp.Address() != address {
		return consts.ErrorWalletAddressInvalid
	}
	return nil
}

// XLMBalance returns the native balance of the account, or zero when the
// account has not been created on the ledger yet.
func (w *StellarWallet) XLMBalance(ctx context.Context, address string) (float64, error) {
	account, err := w.client.LoadAccount(address)
	if err != nil {
		if herr, ok := err.(*horizon.Error); ok && herr.Problem.Status == http.StatusNotFound {
			return 0, nil
		}
		logger.Error(ctx, "stellar : Failed to load account %s: %v", address, err)
		return 0, err
	}

	for _, balance := range account.Balances {
		if balance.Asset.Type == "native" {
			amount, parseErr := strconv.ParseFloat(balance.Balance, 64)
			if parseErr != nil {
				return 0, parseErr
			}
			return amount, nil
		}
	}
	return 0, nil
}

// NewKeypair generates a fresh random keypair. The platform never stores the
// seed; callers on testnet use it to create throwaway accounts.
func NewKeypair() (address string, seed string, err error) {
	pair, err := keypair.Random()
	if err != nil {
		return "", "", err
	}
	return pair.Address(), pair.Seed(), nil
}
