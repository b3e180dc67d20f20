package prototype

const (
	// PubKeySymbol prefixes the WIF form of public keys.
	PubKeySymbol = "HRV"

	// AddressVersion is the leading byte of every address payload.
	AddressVersion = byte(0x68)

	privKeyLength = 32
	pubKeyLength  = 33

	checksumLength    = 4
	addressHashLength = 20
)
