// Package certificate builds self-asserted certificates binding a subject
// name to an exported public key. No authority attests the binding; trust
// decisions live behind domain.CertificateValidator.
package certificate
