package prototype

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"math/big"
	"strings"

	"github.com/itchyny/base58-go"
)

// PublicKey holds a compressed secp256k1 public key.
type PublicKey struct {
	data []byte
}

func PublicKeyFromBytes(buffer []byte) *PublicKey {
	result := new(PublicKey)
	result.data = buffer
	return result
}

func PublicKeyFromWIF(encoded string) (*PublicKey, error) {
	if encoded == "" {
		return nil, ErrKeyLength
	}
	if !strings.HasPrefix(encoded, PubKeySymbol) {
		return nil, ErrPubKeyFormat
	}

	buffer := ([]byte(encoded))[len(PubKeySymbol):]
	decoded, err := base58.BitcoinEncoding.Decode(buffer)
	if err != nil {
		return nil, err
	}

	x, ok := new(big.Int).SetString(string(decoded), 10)
	if !ok {
		return nil, ErrPubKeyFormat
	}

	// compressed public keys always start with 0x02 or 0x03, so the
	// big.Int round trip cannot eat leading bytes here
	buf := x.Bytes()
	if len(buf) <= checksumLength {
		return nil, ErrPubKeyFormat
	}

	body := buf[:len(buf)-checksumLength]
	temp := sha256.Sum256(body)
	temps := sha256.Sum256(temp[:])
	if !bytes.Equal(temps[0:checksumLength], buf[len(buf)-checksumLength:]) {
		return nil, ErrPubKeyFormat
	}

	return PublicKeyFromBytes(body), nil
}

func (m *PublicKey) Bytes() []byte {
	return m.data
}

func (m *PublicKey) Equal(other *PublicKey) bool {
	if m == nil || other == nil {
		return m == other
	}
	return bytes.Equal(m.data, other.data)
}

func (m *PublicKey) ToWIF() string {
	return fmt.Sprintf("%s%s", PubKeySymbol, m.ToBase58())
}

func (m *PublicKey) ToBase58() string {
	// copy first: appending the checksum through an aliasing slice
	// could scribble into the key's backing array
	data := append([]byte(nil), m.data...)
	temp := sha256.Sum256(data)
	temps := sha256.Sum256(temp[:])
	data = append(data, temps[0:checksumLength]...)

	bi := new(big.Int).SetBytes(data).String()
	encoded, _ := base58.BitcoinEncoding.Encode([]byte(bi))
	return string(encoded)
}

func (m *PublicKey) Validate() error {
	if m == nil {
		return ErrNpe
	}
	if len(m.data) != pubKeyLength {
		return ErrKeyLength
	}
	return nil
}

func (m *PublicKey) MarshalJSON() ([]byte, error) {
	val := fmt.Sprintf("\"%s\"", m.ToWIF())
	return []byte(val), nil
}

func (m *PublicKey) UnmarshalJSON(input []byte) error {
	if len(input) < 2 || input[0] != '"' || input[len(input)-1] != '"' {
		return ErrPubKeyFormat
	}
	res, err := PublicKeyFromWIF(string(input[1 : len(input)-1]))
	if err != nil {
		return err
	}
	m.data = res.data
	return nil
}
