package domain

import (
	"crypto/rsa"
	"encoding/hex"
	"encoding/json"
)

// Digest is a SHA-256 digest of document content.
type Digest [32]byte

func (d Digest) Slice() []byte { return d[:] }

// Signature is an RSA-PSS signature over a Digest. The scheme is
// probabilistic: two signatures over the same digest by the same key are
// both valid but generally not byte-equal.
type Signature []byte

// KeyPair holds a party's RSA keys. The private key never leaves the
// process boundary; only the public key is exportable.
type KeyPair struct {
	Private *rsa.PrivateKey
	Public  *rsa.PublicKey
}

// Certificate binds a subject name to a PEM-encoded public key
// (SubjectPublicKeyInfo). It is self-asserted: no third party attests the
// binding. Immutable once built.
type Certificate struct {
	Name         string `json:"name"`
	PublicKeyPEM string `json:"public_key_pem"`
}

// SignatureRecord is one entry in a document's signature ledger.
// Immutable once appended.
type SignatureRecord struct {
	Signature   Signature
	Certificate Certificate
	Timestamp   string // ISO-8601 UTC, see TimestampLayout
}

// MarshalJSON renders the signature bytes as a lowercase hex string.
func (r SignatureRecord) MarshalJSON() ([]byte, error) {
	type alias struct {
		Signature   string      `json:"signature"`
		Certificate Certificate `json:"certificate"`
		Timestamp   string      `json:"timestamp"`
	}
	return json.Marshal(alias{
		Signature:   hex.EncodeToString(r.Signature),
		Certificate: r.Certificate,
		Timestamp:   r.Timestamp,
	})
}

// UnmarshalJSON mirrors MarshalJSON.
func (r *SignatureRecord) UnmarshalJSON(data []byte) error {
	var aux struct {
		Signature   string      `json:"signature"`
		Certificate Certificate `json:"certificate"`
		Timestamp   string      `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	sig, err := hex.DecodeString(aux.Signature)
	if err != nil {
		return err
	}
	r.Signature = sig
	r.Certificate = aux.Certificate
	r.Timestamp = aux.Timestamp
	return nil
}

// EncryptedMessage is a one-shot timestamp-bound ciphertext. The timestamp
// is embedded in the plaintext before encryption; the copy here is the
// out-of-band value the recipient must present when opening.
type EncryptedMessage struct {
	Ciphertext []byte
	Timestamp  string
}

// Party bundles the key material and certificate of one signer.
type Party struct {
	Name string
	Keys KeyPair
	Cert Certificate
}
