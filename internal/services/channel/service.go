package channel

import (
	"crypto/rsa"
	"fmt"
	"strings"

	"contractseal/internal/crypto"
	"contractseal/internal/domain"
)

// Service seals messages to a recipient's public key and opens them with
// the matching private key, checking freshness via the embedded timestamp.
type Service struct {
	clock domain.Clock
}

// New returns a channel bound to clock. Pass domain.SystemClock{} outside
// tests.
func New(clock domain.Clock) *Service { return &Service{clock: clock} }

// Seal encrypts message to recipient. The current timestamp is prepended to
// the plaintext as "timestamp|message" before encryption and returned
// alongside the ciphertext; the recipient must already know it to validate
// freshness on Open. The stamped plaintext must fit one RSA-OAEP block
// (190 bytes for a 2048-bit key), or Seal fails.
func (s *Service) Seal(message string, recipient *rsa.PublicKey) (domain.EncryptedMessage, error) {
	ts := domain.Timestamp(s.clock.Now())
	ct, err := crypto.EncryptOAEP([]byte(ts+"|"+message), recipient)
	if err != nil {
		return domain.EncryptedMessage{}, fmt.Errorf("seal message: %w", err)
	}
	return domain.EncryptedMessage{Ciphertext: ct, Timestamp: ts}, nil
}

// Open decrypts ciphertext and validates the embedded timestamp against
// expectedTimestamp.
//
// The plaintext splits on the first '|' only, so messages that themselves
// contain '|' survive the round trip intact. Timestamps compare by exact
// string equality.
//
// A ciphertext that cannot be decrypted (corrupted bytes, wrong key) yields
// a *domain.DecryptionError; a cleanly decrypted message with a different
// timestamp yields a *domain.TimestampMismatchError. Callers distinguish
// the two with errors.As and may retry only the latter.
func (s *Service) Open(ciphertext []byte, recipient *rsa.PrivateKey, expectedTimestamp string) (string, error) {
	plain, err := crypto.DecryptOAEP(ciphertext, recipient)
	if err != nil {
		return "", &domain.DecryptionError{Err: err}
	}
	embedded, message, _ := strings.Cut(string(plain), "|")
	if embedded != expectedTimestamp {
		return "", &domain.TimestampMismatchError{Expected: expectedTimestamp, Embedded: embedded}
	}
	return message, nil
}

// Compile-time assertion that Service implements domain.ChannelService.
var _ domain.ChannelService = (*Service)(nil)
