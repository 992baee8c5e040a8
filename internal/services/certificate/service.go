package certificate

import (
	"crypto/rsa"
	"fmt"

	"contractseal/internal/crypto"
	"contractseal/internal/domain"
)

// Service issues self-asserted certificates.
type Service struct{}

// New returns a certificate issuer.
func New() *Service { return &Service{} }

// Issue exports pub as PEM SubjectPublicKeyInfo and binds it to
// subjectName. The name is not validated beyond being non-empty. An export
// failure is fatal to the caller.
func (s *Service) Issue(subjectName string, pub *rsa.PublicKey) (domain.Certificate, error) {
	if subjectName == "" {
		return domain.Certificate{}, domain.ErrEmptySubject
	}
	pemText, err := crypto.MarshalPublicKeyPEM(pub)
	if err != nil {
		return domain.Certificate{}, fmt.Errorf("export public key: %w", err)
	}
	return domain.Certificate{Name: subjectName, PublicKeyPEM: pemText}, nil
}

// Compile-time assertion that Service implements domain.CertificateIssuer.
var _ domain.CertificateIssuer = (*Service)(nil)
