package domain

// CertificateValidator decides whether a certificate is trusted. Injected
// into the contract service so the trust model stays pluggable: the
// protocol ships with AlwaysTrust, and a chain-validating implementation
// can replace it without touching the signing workflow.
type CertificateValidator interface {
	Validate(cert Certificate) error
}

// AlwaysTrust accepts every certificate, the global trust assumption that
// comes with self-asserted certificates.
type AlwaysTrust struct{}

func (AlwaysTrust) Validate(Certificate) error { return nil }
