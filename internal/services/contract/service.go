package contract

import (
	"errors"
	"fmt"

	"contractseal/internal/crypto"
	"contractseal/internal/domain"
)

var (
	// ErrNoPriorSignature is returned by Countersign on an unsigned document.
	ErrNoPriorSignature = errors.New("document has no signature to verify")

	// ErrPriorSignatureInvalid is returned by Countersign when the latest
	// recorded signature fails verification.
	ErrPriorSignatureInvalid = errors.New("prior signature failed verification")
)

// Service signs documents and verifies recorded signatures using an
// injected clock and certificate validator.
type Service struct {
	clock     domain.Clock
	validator domain.CertificateValidator
}

// New returns a contract service. AlwaysTrust keeps the default global
// trust model; a chain validator can be injected instead.
func New(clock domain.Clock, validator domain.CertificateValidator) *Service {
	return &Service{clock: clock, validator: validator}
}

// Sign appends signer's signature over doc's content digest, stamped with
// the current time.
//
// The ledger records whatever it is handed; verifying earlier signatures
// is the countersigner's job (Countersign), not the ledger's.
func (s *Service) Sign(doc *domain.Document, signer domain.Party) error {
	digest := crypto.DigestContent(doc.Content)
	sig, err := crypto.SignDigest(digest, signer.Keys.Private)
	if err != nil {
		return fmt.Errorf("sign document: %w", err)
	}
	doc.Append(domain.SignatureRecord{
		Signature:   sig,
		Certificate: signer.Cert,
		Timestamp:   domain.Timestamp(s.clock.Now()),
	})
	return nil
}

// Countersign verifies the most recent signature on doc and, when it
// holds, appends signer's own. It refuses to countersign an unsigned
// document or one whose latest signature does not verify.
func (s *Service) Countersign(doc *domain.Document, signer domain.Party) error {
	records := doc.Records()
	if len(records) == 0 {
		return ErrNoPriorSignature
	}
	ok, err := s.VerifyRecord(doc.Content, records[len(records)-1])
	if err != nil {
		return err
	}
	if !ok {
		return ErrPriorSignatureInvalid
	}
	return s.Sign(doc, signer)
}

// VerifyRecord reports whether rec's signature verifies over content under
// the public key carried in rec's certificate. The certificate is checked
// by the injected validator first; an unparseable certificate key is an
// error, not a false verdict.
func (s *Service) VerifyRecord(content string, rec domain.SignatureRecord) (bool, error) {
	if err := s.validator.Validate(rec.Certificate); err != nil {
		return false, fmt.Errorf("validate certificate %q: %w", rec.Certificate.Name, err)
	}
	pub, err := crypto.ParsePublicKeyPEM(rec.Certificate.PublicKeyPEM)
	if err != nil {
		return false, fmt.Errorf("parse certificate key: %w", err)
	}
	return crypto.VerifyDigest(crypto.DigestContent(content), rec.Signature, pub), nil
}

// Compile-time assertion that Service implements domain.ContractService.
var _ domain.ContractService = (*Service)(nil)
