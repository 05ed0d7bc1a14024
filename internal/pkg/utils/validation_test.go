package utils

import (
	"testing"

	"github.com/Kredible-Inc/kredible-lending/internal/pkg/consts"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStellarAddress(t *testing.T) {
	valid := "GAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
	ok, err := IsValidStellarAddress(valid)
	assert.True(t, ok)
	assert.NoError(t, err)

	invalid := []string{
		"",
		"not-an-address",
		"SAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", // secret seed prefix
		"GAAAA",                  // too short
		valid + "A",              // too long
		"G1AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", // 1 not in base32 alphabet
		"gaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", // lowercase
	}
	for _, address := range invalid {
		ok, err := IsValidStellarAddress(address)
		assert.False(t, ok, "address %q", address)
		assert.Equal(t, consts.ErrorWalletAddressInvalid, err)
	}
}

func TestNormalizeWalletAddress(t *testing.T) {
	assert.Equal(t, "GABC", NormalizeWalletAddress("  gabc "))
	assert.Equal(t, "GABC", NormalizeWalletAddress("GABC"))
}

func TestIsValidAmount(t *testing.T) {
	ok, err := IsValidAmount(100)
	assert.True(t, ok)
	assert.NoError(t, err)

	for _, amount := range []float64{0, -1, -0.01} {
		ok, err := IsValidAmount(amount)
		assert.False(t, ok)
		assert.Equal(t, consts.ErrorInvalidAmount, err)
	}
}

func TestIsValidDuration(t *testing.T) {
	ok, _ := IsValidDuration(30)
	assert.True(t, ok)

	ok, err := IsValidDuration(0)
	assert.False(t, ok)
	assert.Equal(t, consts.ErrorInvalidDuration, err)
}

func TestIsValidInterestRate(t *testing.T) {
	ok, _ := IsValidInterestRate(6.5)
	assert.True(t, ok)

	ok, err := IsValidInterestRate(-2)
	assert.False(t, ok)
	assert.Equal(t, consts.ErrorInvalidRate, err)
}

func TestIsValidMinCreditScore(t *testing.T) {
	for _, score := range []int{consts.MinCreditScore, 600, consts.MaxCreditScore} {
		ok, err := IsValidMinCreditScore(score)
		assert.True(t, ok, "score %d", score)
		assert.NoError(t, err)
	}

	for _, score := range []int{consts.MinCreditScore - 1, consts.MaxCreditScore + 1, 0} {
		ok, err := IsValidMinCreditScore(score)
		assert.False(t, ok, "score %d", score)
		assert.Equal(t, consts.ErrorInvalidMinScore, err)
	}
}

func TestIsValidLTV(t *testing.T) {
	for _, ltv := range []float64{50, 80, 100, 0.5} {
		ok, _ := IsValidLTV(ltv)
		assert.True(t, ok, "ltv %f", ltv)
	}

	for _, ltv := range []float64{0, -10, 100.5} {
		ok, err := IsValidLTV(ltv)
		assert.False(t, ok, "ltv %f", ltv)
		assert.Equal(t, consts.ErrorInvalidLTV, err)
	}
}
