package certificate_test

import (
	"errors"
	"testing"

	"contractseal/internal/crypto"
	"contractseal/internal/domain"
	"contractseal/internal/services/certificate"
)

func TestIssue_OK(t *testing.T) {
	kp, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	cert, err := certificate.New().Issue("Company XYZ", kp.Public)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if cert.Name != "Company XYZ" {
		t.Fatalf("name = %q", cert.Name)
	}

	pub, err := crypto.ParsePublicKeyPEM(cert.PublicKeyPEM)
	if err != nil {
		t.Fatalf("ParsePublicKeyPEM: %v", err)
	}
	if pub.N.Cmp(kp.Public.N) != 0 {
		t.Fatalf("certificate carries a different key")
	}
}

func TestIssue_EmptySubject(t *testing.T) {
	kp, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	if _, err := certificate.New().Issue("", kp.Public); !errors.Is(err, domain.ErrEmptySubject) {
		t.Fatalf("got %v, want ErrEmptySubject", err)
	}
}
