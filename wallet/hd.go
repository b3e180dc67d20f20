package wallet

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"

	"github.com/harvestchain/harvest-go/prototype"
)

// DefaultHDPath is the derivation path used for mnemonic-based
// accounts.
const DefaultHDPath = "m/44'/10111'/0'/0/0"

var defaultRootDerivationPath = DerivationPath{0x80000000 + 44, 0x80000000 + 10111, 0x80000000 + 0, 0, 0}

type DerivationPath []uint32

func ParseDerivationPath(path string) (DerivationPath, error) {
	var result DerivationPath

	// Handle absolute or relative paths
	components := strings.Split(path, "/")
	switch {
	case len(components) == 0:
		return nil, errors.New("empty derivation path")

	case strings.TrimSpace(components[0]) == "":
		return nil, errors.New("ambiguous path: use 'm/' prefix for absolute paths, or no leading '/' for relative ones")

	case strings.TrimSpace(components[0]) == "m":
		components = components[1:]

	default:
		result = append(result, defaultRootDerivationPath...)
	}
	if len(components) == 0 {
		return nil, errors.New("empty derivation path")
	}
	for _, component := range components {
		component = strings.TrimSpace(component)
		var value uint32

		// Handle hardened paths
		if strings.HasSuffix(component, "'") {
			// 2 ^ 31
			value = 0x80000000
			component = strings.TrimSpace(strings.TrimSuffix(component, "'"))
		}
		bigval, ok := new(big.Int).SetString(component, 0)
		if !ok {
			return nil, fmt.Errorf("invalid component: %s", component)
		}
		max := math.MaxUint32 - value
		if bigval.Sign() < 0 || bigval.Cmp(big.NewInt(int64(max))) > 0 {
			if value == 0 {
				return nil, fmt.Errorf("component %v out of allowed range [0, %d]", bigval, max)
			}
			return nil, fmt.Errorf("component %v out of allowed hardened range [0, %d]", bigval, max)
		}
		value += uint32(bigval.Uint64())

		result = append(result, value)
	}
	return result, nil
}

// String converts a binary derivation path to its canonical
// representation.
func (path DerivationPath) String() string {
	result := "m"
	for _, component := range path {
		var hardened bool
		if component >= 0x80000000 {
			component -= 0x80000000
			hardened = true
		}
		result = fmt.Sprintf("%s/%d", result, component)
		if hardened {
			result += "'"
		}
	}
	return result
}

// GenerateMnemonic produces a fresh 24-word mnemonic.
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// NewAccountFromMnemonic derives an account's primary key from a
// mnemonic along DefaultHDPath. The same mnemonic always yields the
// same account.
func NewAccountFromMnemonic(mnemonic string) (*Account, error) {
	return NewAccountFromMnemonicPath(mnemonic, DefaultHDPath)
}

// NewAccountFromMnemonicPath derives an account's primary key from a
// mnemonic along the given derivation path.
func NewAccountFromMnemonicPath(mnemonic string, hdPath string) (*Account, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	path, err := ParseDerivationPath(hdPath)
	if err != nil {
		return nil, err
	}
	seed := bip39.NewSeed(mnemonic, "")
	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, err
	}
	for _, n := range path {
		key, err = key.NewChildKey(n)
		if err != nil {
			return nil, err
		}
	}
	return NewAccountFromKey(prototype.PrivateKeyFromBytes(key.Key), nil)
}
