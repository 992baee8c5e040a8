package crypto

import (
	stdcrypto "crypto"
	"crypto/rand"
	"crypto/rsa"

	"contractseal/internal/domain"
)

// pssOptions fixes the signing scheme: MGF1 over SHA-256 with the maximum
// salt length the key permits (PSSSaltLengthAuto selects the largest
// possible salt when signing).
func pssOptions() *rsa.PSSOptions {
	return &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthAuto, Hash: stdcrypto.SHA256}
}

// SignDigest signs digest with priv using RSA-PSS. The salt is random, so
// repeated calls over the same digest produce different signature bytes
// that all verify.
func SignDigest(digest domain.Digest, priv *rsa.PrivateKey) (domain.Signature, error) {
	sig, err := rsa.SignPSS(rand.Reader, priv, stdcrypto.SHA256, digest.Slice(), pssOptions())
	if err != nil {
		return nil, err
	}
	return domain.Signature(sig), nil
}

// VerifyDigest reports whether sig is a valid signature over digest by the
// holder of pub. Malformed signatures, wrong keys, and tampered digests all
// collapse to false; the predicate never fails.
func VerifyDigest(digest domain.Digest, sig domain.Signature, pub *rsa.PublicKey) bool {
	return rsa.VerifyPSS(pub, stdcrypto.SHA256, digest.Slice(), sig, pssOptions()) == nil
}
