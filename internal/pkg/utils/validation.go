package utils

import (
	"regexp"
	"strings"

	"github.com/Kredible-Inc/kredible-lending/internal/pkg/consts"
)

var stellarAddressPattern = regexp.MustCompile(consts.ValidStellarAddress)

// IsValidStellarAddress reports whether the string is a well-formed Stellar
// ed25519 public key. Only the shape is checked, not the checksum.
func IsValidStellarAddress(address string) (bool, error) {
	if !stellarAddressPattern.MatchString(address) {
		return false, consts.ErrorWalletAddressInvalid
	}
	return true, nil
}

// NormalizeWalletAddress trims whitespace and upcases; Stellar keys are case
// insensitive on input but stored canonical.
func NormalizeWalletAddress(address string) string {
	return strings.ToUpper(strings.TrimSpace(address))
}

func IsValidAmount(amount float64) (bool, error) {
	if amount <= 0 {
		return false, consts.ErrorInvalidAmount
	}
	return true, nil
}

func IsValidDuration(durationDays int) (bool, error) {
	if durationDays <= 0 {
		return false, consts.ErrorInvalidDuration
	}
	return true, nil
}

func IsValidInterestRate(rate float64) (bool, error) {
	if rate <= 0 {
		return false, consts.ErrorInvalidRate
	}
	return true, nil
}

func IsValidMinCreditScore(score int) (bool, error) {
	if score < consts.MinCreditScore || score > consts.MaxCreditScore {
		return false, consts.ErrorInvalidMinScore
	}
	return true, nil
}

func IsValidLTV(ltv float64) (bool, error) {
	if ltv <= 0 || ltv > 100 {
		return false, consts.ErrorInvalidLTV
	}
	return true, nil
}
