// Package contract runs the co-signing workflow over a document.
//
// It digests the content, produces and records signatures, and verifies
// recorded signatures against the public key carried in each record's
// certificate. The document ledger itself stays passive; verification
// before countersigning happens here.
package contract
