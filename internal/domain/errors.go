package domain

import (
	"errors"
	"fmt"
)

// ErrEmptySubject is returned when a certificate is requested for an empty
// subject name.
var ErrEmptySubject = errors.New("certificate subject name must not be empty")

// TimestampMismatchError reports a message that decrypted cleanly but whose
// embedded timestamp does not equal the expected one. A recoverable
// application-level condition: the caller can request a fresh message.
type TimestampMismatchError struct {
	Expected string
	Embedded string
}

func (e *TimestampMismatchError) Error() string {
	return fmt.Sprintf("timestamp mismatch: expected %q, message carries %q", e.Expected, e.Embedded)
}

// DecryptionError reports a ciphertext that could not be decrypted at all
// (corrupted bytes or wrong key). Fatal for the current open call and
// distinguishable from a timestamp mismatch via errors.As.
type DecryptionError struct {
	Err error
}

func (e *DecryptionError) Error() string { return "decrypt message: " + e.Err.Error() }

func (e *DecryptionError) Unwrap() error { return e.Err }
