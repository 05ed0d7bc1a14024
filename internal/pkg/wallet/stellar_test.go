package wallet

import (
	"testing"

	"github.com/Kredible-Inc/kredible-lending/internal/pkg/consts"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestVerifyAddress(t *testing.T) {
	w := NewStellarWallet()

	t.Run("generated keypair verifies", func(t *testing.T) {
		address, seed, err := NewKeypair()
		assert.NoError(t, err)
		assert.NotEmpty(t, seed)

		ok, err := utils.IsValidStellarAddress(address)
		assert.True(t, ok)
		assert.NoError(t, err)

		assert.NoError(t, w.VerifyAddress(address))
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		for _, address := range []string{"", "hello", "GAAAA", "GAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA1"} {
			err := w.VerifyAddress(address)
			assert.Equal(t, consts.ErrorWalletAddressInvalid, err, "address %q", address)
		}
	})

	t.Run("seed is not an account address", func(t *testing.T) {
		_, seed, err := NewKeypair()
		assert.NoError(t, err)
		assert.Error(t, w.VerifyAddress(seed))
	})
}
