package party

import (
	"fmt"

	"contractseal/internal/crypto"
	"contractseal/internal/domain"
)

const (
	// minKeyBits is the smallest RSA modulus the workflow accepts.
	minKeyBits = 2048
)

// Service generates parties using an injected certificate issuer.
type Service struct {
	issuer domain.CertificateIssuer
	bits   int
}

// New returns a party service generating keys of the given modulus size.
func New(issuer domain.CertificateIssuer, bits int) *Service {
	return &Service{issuer: issuer, bits: bits}
}

// GenerateParty creates a key pair and certificate for name. The private
// key stays inside the returned Party and is never serialised or copied
// into a certificate or document.
func (s *Service) GenerateParty(name string) (domain.Party, error) {
	if s.bits < minKeyBits {
		return domain.Party{}, fmt.Errorf("key size %d bits below minimum %d", s.bits, minKeyBits)
	}
	keys, err := crypto.GenerateKeyPairBits(s.bits)
	if err != nil {
		return domain.Party{}, fmt.Errorf("generate key pair: %w", err)
	}
	cert, err := s.issuer.Issue(name, keys.Public)
	if err != nil {
		return domain.Party{}, err
	}
	return domain.Party{Name: name, Keys: keys, Cert: cert}, nil
}

// FingerprintParty returns a short fingerprint of the party's exported
// public key.
func (s *Service) FingerprintParty(p domain.Party) string {
	return crypto.Fingerprint([]byte(p.Cert.PublicKeyPEM))
}

// Compile-time assertion that Service implements domain.PartyService.
var _ domain.PartyService = (*Service)(nil)
