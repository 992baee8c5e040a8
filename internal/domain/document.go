package domain

import (
	"encoding/json"

	"github.com/google/uuid"
)

// DocumentID identifies a contract document in the archive.
type DocumentID string

// NewDocumentID returns a fresh random document ID.
func NewDocumentID() DocumentID { return DocumentID(uuid.NewString()) }

// Document is an append-only ledger of signatures over fixed content.
//
// Append performs no validation of its own: callers must verify a signature
// before recording it (the contract service does this on countersign).
// Insertion order carries meaning — it is the order in which parties
// signed — and is never reordered or deduplicated. Signing is sequential in
// this protocol; concurrent appends need external synchronisation.
type Document struct {
	ID      DocumentID
	Content string

	records []SignatureRecord
}

// NewDocument creates a document with the given content and no signatures.
func NewDocument(content string) *Document {
	return &Document{ID: NewDocumentID(), Content: content}
}

// Append records a signature. The ledger only grows.
func (d *Document) Append(rec SignatureRecord) {
	d.records = append(d.records, rec)
}

// Records returns a copy of the signature ledger in insertion order.
func (d *Document) Records() []SignatureRecord {
	out := make([]SignatureRecord, len(d.records))
	copy(out, d.records)
	return out
}

// Len returns the number of recorded signatures.
func (d *Document) Len() int { return len(d.records) }

// ExportedDocument is the serialisable snapshot of a Document.
type ExportedDocument struct {
	ID         DocumentID        `json:"id"`
	Content    string            `json:"content"`
	Signatures []SignatureRecord `json:"signatures"`
}

// Exported returns the document's current snapshot.
func (d *Document) Exported() ExportedDocument {
	return ExportedDocument{ID: d.ID, Content: d.Content, Signatures: d.Records()}
}

// Export serialises the document as indented JSON, signatures rendered as
// hex strings with certificates inlined. It never mutates state.
func (d *Document) Export() (string, error) {
	b, err := json.MarshalIndent(d.Exported(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
