package prototype

import (
	"bytes"
	"crypto/sha256"
	"math/big"

	"github.com/OneOfOne/xxhash"
	"github.com/itchyny/base58-go"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// Address is the public identifier derived from an account's public key.
// It is a comparable value type; two addresses are equal iff their
// canonical strings are equal.
type Address struct {
	encoded string
}

// AddressFromPublicKey derives the canonical address of a public key:
// version byte + ripemd160(sha3-256(key)) + 4-byte double-sha256
// checksum, base58 encoded. Deterministic, no error path.
func AddressFromPublicKey(pub *PublicKey) Address {
	inner := sha3.New256()
	inner.Write(pub.Bytes())

	outer := ripemd160.New()
	outer.Write(inner.Sum(nil))

	payload := make([]byte, 0, 1+addressHashLength+checksumLength)
	payload = append(payload, AddressVersion)
	payload = append(payload, outer.Sum(nil)...)

	temp := sha256.Sum256(payload)
	temps := sha256.Sum256(temp[:])
	payload = append(payload, temps[0:checksumLength]...)

	bi := new(big.Int).SetBytes(payload).String()
	encoded, _ := base58.BitcoinEncoding.Encode([]byte(bi))
	return Address{encoded: string(encoded)}
}

// AddressFromString parses the canonical string form, verifying version
// and checksum.
func AddressFromString(encoded string) (Address, error) {
	if encoded == "" {
		return Address{}, ErrAddressFormat
	}
	decoded, err := base58.BitcoinEncoding.Decode([]byte(encoded))
	if err != nil {
		return Address{}, err
	}

	x, ok := new(big.Int).SetString(string(decoded), 10)
	if !ok {
		return Address{}, ErrAddressFormat
	}

	buf := x.Bytes()
	if len(buf) != 1+addressHashLength+checksumLength || buf[0] != AddressVersion {
		return Address{}, ErrAddressFormat
	}

	body := buf[:len(buf)-checksumLength]
	temp := sha256.Sum256(body)
	temps := sha256.Sum256(temp[:])
	if !bytes.Equal(temps[0:checksumLength], buf[len(buf)-checksumLength:]) {
		return Address{}, ErrAddressChecksum
	}

	return Address{encoded: encoded}, nil
}

func (a Address) String() string {
	return a.encoded
}

func (a Address) Equal(other Address) bool {
	return a.encoded == other.encoded
}

// Hash returns a stable 64-bit hash of the canonical string.
func (a Address) Hash() uint64 {
	return xxhash.ChecksumString64(a.encoded)
}

func (a Address) IsZero() bool {
	return a.encoded == ""
}
