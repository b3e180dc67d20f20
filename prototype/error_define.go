package prototype

import "github.com/pkg/errors"

var (
	ErrNpe             = errors.New("Null Pointer")
	ErrKeyLength       = errors.New("Key Length Error")
	ErrPrivKeyFormat   = errors.New("Private Key Format Error")
	ErrPubKeyFormat    = errors.New("Public Key Format Error")
	ErrAddressFormat   = errors.New("Address Format Error")
	ErrAddressChecksum = errors.New("Address Checksum Mismatch")
)
