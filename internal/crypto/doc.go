// Package crypto exposes the RSA primitives used by contractseal.
//
// Contents
//
//   - RSA key-pair generation (GenerateKeyPair, GenerateKeyPairBits)
//   - SHA-256 content digests (DigestContent)
//   - RSA-PSS signing and verification (SignDigest, VerifyDigest)
//   - RSA-OAEP encryption and decryption (EncryptOAEP, DecryptOAEP)
//   - PEM SubjectPublicKeyInfo export and parse (MarshalPublicKeyPEM,
//     ParsePublicKeyPEM)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// All functions are stateless wrappers over the standard library, returning
// the fixed types defined in internal/domain. VerifyDigest is a total
// predicate: every underlying verification error maps to false.
package crypto
