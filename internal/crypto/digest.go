package crypto

import (
	"crypto/sha256"

	"contractseal/internal/domain"
)

// DigestContent computes the SHA-256 digest of content's UTF-8 bytes.
// Deterministic and total: the same content always yields the same digest.
func DigestContent(content string) domain.Digest {
	return domain.Digest(sha256.Sum256([]byte(content)))
}
