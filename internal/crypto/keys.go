package crypto

import (
	"crypto/rand"
	"crypto/rsa"

	"contractseal/internal/domain"
)

// KeyBits is the default RSA modulus size for new key pairs. The public
// exponent is 65537 (the crypto/rsa fixed exponent).
const KeyBits = 2048

// GenerateKeyPair returns a fresh RSA key pair of the default size.
// Failure means the entropy source is exhausted and is fatal to the caller.
func GenerateKeyPair() (domain.KeyPair, error) {
	return GenerateKeyPairBits(KeyBits)
}

// GenerateKeyPairBits returns a fresh RSA key pair with the given modulus
// size in bits.
func GenerateKeyPairBits(bits int) (domain.KeyPair, error) {
	priv, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return domain.KeyPair{}, err
	}
	return domain.KeyPair{Private: priv, Public: &priv.PublicKey}, nil
}
