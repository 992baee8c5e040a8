package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
)

// EncryptOAEP encrypts plaintext to pub using RSA-OAEP with SHA-256 as both
// the padding hash and the MGF1 hash, and no label.
func EncryptOAEP(plaintext []byte, pub *rsa.PublicKey) ([]byte, error) {
	return rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, plaintext, nil)
}

// DecryptOAEP reverses EncryptOAEP with the matching parameters.
func DecryptOAEP(ciphertext []byte, priv *rsa.PrivateKey) ([]byte, error) {
	return rsa.DecryptOAEP(sha256.New(), nil, priv, ciphertext, nil)
}
