package prototype

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressDerivationIsDeterministic(t *testing.T) {
	myassert := assert.New(t)
	keyPair, err := KeyPairFromPrivateKey(PrivateKeyFromRaw(big.NewInt(12345)))
	myassert.NoError(err)
	first := AddressFromPublicKey(keyPair.PublicKey())
	second := AddressFromPublicKey(keyPair.PublicKey())
	myassert.True(first.Equal(second))
	myassert.Equal(first.String(), second.String())
	myassert.False(first.IsZero())
}

func TestDifferentKeysGiveDifferentAddresses(t *testing.T) {
	myassert := assert.New(t)
	a, err := KeyPairFromPrivateKey(PrivateKeyFromRaw(big.NewInt(12345)))
	myassert.NoError(err)
	b, err := KeyPairFromPrivateKey(PrivateKeyFromRaw(big.NewInt(54321)))
	myassert.NoError(err)
	myassert.False(AddressFromPublicKey(a.PublicKey()).Equal(AddressFromPublicKey(b.PublicKey())))
}

func TestAddressStringRoundTrip(t *testing.T) {
	myassert := assert.New(t)
	keyPair, err := GenerateKeyPair()
	myassert.NoError(err)
	address := AddressFromPublicKey(keyPair.PublicKey())
	parsed, err := AddressFromString(address.String())
	myassert.NoError(err)
	myassert.True(address.Equal(parsed))
}

func TestAddressFromStringRejectsTampering(t *testing.T) {
	myassert := assert.New(t)
	keyPair, err := GenerateKeyPair()
	myassert.NoError(err)
	encoded := AddressFromPublicKey(keyPair.PublicKey()).String()

	tail := byte('2')
	if encoded[len(encoded)-1] == tail {
		tail = '3'
	}
	_, err = AddressFromString(encoded[:len(encoded)-1] + string(tail))
	myassert.Error(err)

	_, err = AddressFromString("")
	myassert.Equal(ErrAddressFormat, err)
}

func TestAddressHashFollowsEquality(t *testing.T) {
	myassert := assert.New(t)
	keyPair, err := KeyPairFromPrivateKey(PrivateKeyFromRaw(big.NewInt(777)))
	myassert.NoError(err)
	first := AddressFromPublicKey(keyPair.PublicKey())
	second := AddressFromPublicKey(keyPair.PublicKey())
	myassert.Equal(first.Hash(), second.Hash())
}
