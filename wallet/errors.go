package wallet

import "github.com/pkg/errors"

var (
	ErrMissingPrimaryKey = errors.New("wallet account requires a primary private key")
	ErrInvalidMnemonic   = errors.New("invalid mnemonic")
)
