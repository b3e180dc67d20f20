// Package wallet models a single wallet account: its derived address,
// its primary private key, and the optional remote harvesting identity
// used to delegate block production to another node.
package wallet

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/harvestchain/harvest-go/node"
	"github.com/harvestchain/harvest-go/prototype"
	"github.com/harvestchain/harvest-go/serialization"
)

// Field names of the serialized account record, in write order.
const (
	fieldPrivateKey     = "privateKey"
	fieldRemoteKey      = "remoteHarvestingPrivateKey"
	fieldRemoteEndpoint = "remoteHarvestingEndpoint"
)

// Account is a single account held in a wallet. The address and the
// primary key are fixed at construction; the remote harvesting key can
// be materialized at most once, and the remote endpoint can be replaced
// freely. Account identity (Equal, Hash) depends on the address alone.
//
// An Account is not internally synchronized. EnsureRemoteKey mutates
// the receiver, so sharing an Account across goroutines needs an
// external lock.
type Account struct {
	address        prototype.Address
	primaryKey     *prototype.PrivateKey
	remoteKey      *prototype.PrivateKey
	remoteEndpoint *node.Endpoint
}

// NewAccount creates an account around a freshly generated key pair.
func NewAccount() (*Account, error) {
	keyPair, err := prototype.GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	return &Account{
		address:    prototype.AddressFromPublicKey(keyPair.PublicKey()),
		primaryKey: keyPair.PrivateKey(),
	}, nil
}

// NewAccountFromKey creates an account around an existing primary key.
// rawRemoteKey, when non-nil, is wrapped into the remote harvesting key
// without validation; a nil rawRemoteKey leaves it absent.
func NewAccountFromKey(primaryKey *prototype.PrivateKey, rawRemoteKey *big.Int) (*Account, error) {
	if primaryKey == nil {
		return nil, ErrMissingPrimaryKey
	}
	keyPair, err := prototype.KeyPairFromPrivateKey(primaryKey)
	if err != nil {
		return nil, errors.Wrap(err, "derive public key")
	}
	account := &Account{
		address:    prototype.AddressFromPublicKey(keyPair.PublicKey()),
		primaryKey: primaryKey,
	}
	// be fault tolerant: raw remote key material is stored as-is
	if rawRemoteKey != nil {
		account.remoteKey = prototype.PrivateKeyFromRaw(rawRemoteKey)
	}
	return account, nil
}

// DeserializeAccount reconstructs an account from its serialized form.
// A broken primary-key field fails with the codec's malformed-record
// error; absent optional fields are not errors.
func DeserializeAccount(d *serialization.Deserializer) (*Account, error) {
	rawPrimary, err := d.ReadBigInteger(fieldPrivateKey)
	if err != nil {
		return nil, err
	}
	rawRemote, err := d.ReadOptionalBigInteger(fieldRemoteKey)
	if err != nil {
		return nil, err
	}
	account, err := NewAccountFromKey(prototype.PrivateKeyFromRaw(rawPrimary), rawRemote)
	if err != nil {
		return nil, err
	}
	var endpoint *node.Endpoint
	_, err = d.ReadOptionalObject(fieldRemoteEndpoint, func(nd *serialization.Deserializer) error {
		decoded, err := node.DecodeEndpoint(nd)
		if err != nil {
			return err
		}
		endpoint = decoded
		return nil
	})
	if err != nil {
		return nil, err
	}
	account.remoteEndpoint = endpoint
	return account, nil
}

// Address returns the account's derived address.
func (a *Account) Address() prototype.Address {
	return a.address
}

// PrimaryKey returns the account's primary private key.
func (a *Account) PrimaryKey() *prototype.PrivateKey {
	return a.primaryKey
}

// RemoteKey returns the remote harvesting key, or nil when it was
// never set. It never triggers generation.
func (a *Account) RemoteKey() *prototype.PrivateKey {
	return a.remoteKey
}

// EnsureRemoteKey returns the remote harvesting key, generating and
// memoizing a fresh one on the first call. Once present the key never
// changes.
func (a *Account) EnsureRemoteKey() (*prototype.PrivateKey, error) {
	if a.remoteKey == nil {
		key, err := prototype.GenerateKey()
		if err != nil {
			return nil, err
		}
		a.remoteKey = key
	}
	return a.remoteKey, nil
}

// RemoteEndpoint returns the remote harvesting endpoint, or nil.
func (a *Account) RemoteEndpoint() *node.Endpoint {
	return a.remoteEndpoint
}

// SetRemoteEndpoint replaces the remote harvesting endpoint. A nil
// endpoint clears it.
func (a *Account) SetRemoteEndpoint(endpoint *node.Endpoint) {
	a.remoteEndpoint = endpoint
}

// Equal reports whether both accounts have the same address. Remote
// key and endpoint never participate.
func (a *Account) Equal(other *Account) bool {
	if other == nil {
		return false
	}
	return a.address.Equal(other.address)
}

// Hash returns the hash of the account's address.
func (a *Account) Hash() uint64 {
	return a.address.Hash()
}

func (a *Account) String() string {
	return a.address.String()
}

// Serialize writes the account record: primary key, remote key, remote
// endpoint. Absent optionals become explicit null sentinels; the
// current state is written as-is and never mutated.
func (a *Account) Serialize(s *serialization.Serializer) {
	s.WriteBigInteger(fieldPrivateKey, a.primaryKey.Raw())
	if a.remoteKey != nil {
		s.WriteBigInteger(fieldRemoteKey, a.remoteKey.Raw())
	} else {
		s.WriteNull(fieldRemoteKey)
	}
	if a.remoteEndpoint != nil {
		s.WriteObject(fieldRemoteEndpoint, a.remoteEndpoint)
	} else {
		s.WriteNull(fieldRemoteEndpoint)
	}
}
