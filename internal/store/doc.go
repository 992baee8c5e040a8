// Package store provides file-based persistence for exported contract
// documents.
//
// Documents are serialised as JSON on disk, one file per document ID, with
// atomic temp-file-then-rename writes. A passphrase-sealed variant wraps
// the export in an authenticated encryption envelope (scrypt key
// derivation, ChaCha20-Poly1305). All methods are concurrency-safe via
// internal locking. Only exported document state is ever stored; private
// keys never reach this package.
package store
