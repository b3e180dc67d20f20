package wallet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testMnemonic = "legal winner thank year wave sausage worth useful legal winner thank yellow"

func TestAccountFromMnemonicIsDeterministic(t *testing.T) {
	myassert := assert.New(t)
	first, err := NewAccountFromMnemonic(testMnemonic)
	myassert.NoError(err)
	second, err := NewAccountFromMnemonic(testMnemonic)
	myassert.NoError(err)
	myassert.True(first.Equal(second))
	myassert.True(first.PrimaryKey().Equal(second.PrimaryKey()))
}

func TestAccountFromMnemonicPathsDiffer(t *testing.T) {
	myassert := assert.New(t)
	first, err := NewAccountFromMnemonicPath(testMnemonic, "m/44'/10111'/0'/0/0")
	myassert.NoError(err)
	second, err := NewAccountFromMnemonicPath(testMnemonic, "m/44'/10111'/0'/0/1")
	myassert.NoError(err)
	myassert.False(first.Equal(second))
}

func TestInvalidMnemonicIsRejected(t *testing.T) {
	myassert := assert.New(t)
	_, err := NewAccountFromMnemonic("definitely not a mnemonic")
	myassert.Equal(ErrInvalidMnemonic, err)
}

func TestGenerateMnemonic(t *testing.T) {
	myassert := assert.New(t)
	mnemonic, err := GenerateMnemonic()
	myassert.NoError(err)
	myassert.Len(strings.Fields(mnemonic), 24)

	_, err = NewAccountFromMnemonic(mnemonic)
	myassert.NoError(err)
}

func TestParseDerivationPath(t *testing.T) {
	myassert := assert.New(t)
	path, err := ParseDerivationPath("m/44'/10111'/0'/0/0")
	myassert.NoError(err)
	myassert.Equal(DerivationPath{0x80000000 + 44, 0x80000000 + 10111, 0x80000000, 0, 0}, path)
	myassert.Equal("m/44'/10111'/0'/0/0", path.String())
}

func TestParseDerivationPathRelative(t *testing.T) {
	myassert := assert.New(t)
	path, err := ParseDerivationPath("1/2")
	myassert.NoError(err)
	myassert.Equal(DerivationPath{0x80000000 + 44, 0x80000000 + 10111, 0x80000000, 0, 0, 1, 2}, path)
}

func TestParseDerivationPathRejectsGarbage(t *testing.T) {
	myassert := assert.New(t)
	_, err := ParseDerivationPath("/44'/0")
	myassert.Error(err)
	_, err = ParseDerivationPath("m/notanumber")
	myassert.Error(err)
}
