package prototype

// KeyPair couples a private key with its derived public key.
type KeyPair struct {
	priv *PrivateKey
	pub  *PublicKey
}

// GenerateKeyPair creates a key pair around a fresh random private key.
func GenerateKeyPair() (*KeyPair, error) {
	priv, err := GenerateKey()
	if err != nil {
		return nil, err
	}
	return KeyPairFromPrivateKey(priv)
}

// KeyPairFromPrivateKey derives the public half from an existing
// private key.
func KeyPairFromPrivateKey(priv *PrivateKey) (*KeyPair, error) {
	if priv == nil {
		return nil, ErrNpe
	}
	pub, err := priv.PubKey()
	if err != nil {
		return nil, err
	}
	return &KeyPair{priv: priv, pub: pub}, nil
}

func (kp *KeyPair) PrivateKey() *PrivateKey {
	return kp.priv
}

func (kp *KeyPair) PublicKey() *PublicKey {
	return kp.pub
}
