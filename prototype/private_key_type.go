package prototype

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/itchyny/base58-go"
)

// PrivateKey wraps the raw secret scalar of a secp256k1 key pair.
// The raw value is kept as an arbitrary-precision integer and is never
// validated on construction; callers that need a usable signing key go
// through PubKey, which reports undecodable scalars.
type PrivateKey struct {
	raw *big.Int
}

func PrivateKeyFromRaw(raw *big.Int) *PrivateKey {
	if raw == nil {
		return nil
	}
	return &PrivateKey{raw: new(big.Int).Set(raw)}
}

func PrivateKeyFromBytes(buffer []byte) *PrivateKey {
	return &PrivateKey{raw: new(big.Int).SetBytes(buffer)}
}

func PrivateKeyFromECDSA(key *ecdsa.PrivateKey) *PrivateKey {
	return PrivateKeyFromBytes(crypto.FromECDSA(key))
}

func PrivateKeyFromWIF(encoded string) (*PrivateKey, error) {
	if encoded == "" {
		return nil, ErrPrivKeyFormat
	}
	decoded, err := base58.BitcoinEncoding.Decode([]byte(encoded))
	if err != nil {
		return nil, err
	}

	x, ok := new(big.Int).SetString(string(decoded), 10)
	if !ok {
		return nil, ErrPrivKeyFormat
	}

	buf := x.Bytes()
	if len(buf) <= 1+checksumLength || buf[0] != 1 {
		return nil, ErrPrivKeyFormat
	}
	buf = buf[1:]

	body := buf[:len(buf)-checksumLength]
	temp := sha256.Sum256(body)
	temps := sha256.Sum256(temp[:])
	if !bytes.Equal(temps[0:checksumLength], buf[len(buf)-checksumLength:]) {
		return nil, ErrPrivKeyFormat
	}

	return PrivateKeyFromBytes(body), nil
}

// GenerateKey generates a fresh random private key.
func GenerateKey() (*PrivateKey, error) {
	sigRawKey, err := crypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	return PrivateKeyFromECDSA(sigRawKey), nil
}

// Raw returns a copy of the wrapped scalar.
func (m *PrivateKey) Raw() *big.Int {
	return new(big.Int).Set(m.raw)
}

// Bytes returns the scalar as a 32-byte big-endian buffer.
func (m *PrivateKey) Bytes() []byte {
	return math.PaddedBigBytes(m.raw, privKeyLength)
}

func (m *PrivateKey) Equal(other *PrivateKey) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.raw.Cmp(other.raw) == 0
}

// PubKey derives the matching compressed public key.
func (m *PrivateKey) PubKey() (*PublicKey, error) {
	sigRaw, err := crypto.ToECDSA(m.Bytes())
	if err != nil {
		return nil, err
	}
	buf := crypto.CompressPubkey(&sigRaw.PublicKey)
	return PublicKeyFromBytes(buf), nil
}

func (m *PrivateKey) ToWIF() string {
	return m.ToBase58()
}

// ToBase58 returns the checksummed base58 form of the key.
func (m *PrivateKey) ToBase58() string {
	data := m.Bytes()
	temp := sha256.Sum256(data)
	temps := sha256.Sum256(temp[:])
	data = append(data, temps[0:checksumLength]...)

	// a leading 0x01 marker keeps 0x00-prefixed key data intact
	// through the big.Int round trip
	xdata := bytes.Join([][]byte{{1}, data}, nil)

	bi := new(big.Int).SetBytes(xdata).String()
	encoded, _ := base58.BitcoinEncoding.Encode([]byte(bi))
	return string(encoded)
}

func (m *PrivateKey) Validate() error {
	if m == nil || m.raw == nil {
		return ErrNpe
	}
	if m.raw.Sign() <= 0 || m.raw.BitLen() > privKeyLength*8 {
		return ErrKeyLength
	}
	return nil
}

func (m *PrivateKey) MarshalJSON() ([]byte, error) {
	val := fmt.Sprintf("\"%s\"", m.ToWIF())
	return []byte(val), nil
}

func (m *PrivateKey) UnmarshalJSON(input []byte) error {
	if len(input) < 2 || input[0] != '"' || input[len(input)-1] != '"' {
		return ErrPrivKeyFormat
	}
	res, err := PrivateKeyFromWIF(string(input[1 : len(input)-1]))
	if err != nil {
		return err
	}
	m.raw = res.raw
	return nil
}
