package domain_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"contractseal/internal/domain"
)

func TestDocument_AppendPreservesOrder(t *testing.T) {
	doc := domain.NewDocument("Contract text")

	const n = 5
	for i := 0; i < n; i++ {
		doc.Append(domain.SignatureRecord{
			Signature:   domain.Signature{byte(i)},
			Certificate: domain.Certificate{Name: fmt.Sprintf("Party %d", i)},
			Timestamp:   fmt.Sprintf("ts-%d", i),
		})
	}

	records := doc.Records()
	if len(records) != n {
		t.Fatalf("got %d records, want %d", len(records), n)
	}
	for i, rec := range records {
		if want := fmt.Sprintf("Party %d", i); rec.Certificate.Name != want {
			t.Fatalf("record %d is %q, want %q", i, rec.Certificate.Name, want)
		}
	}
}

func TestDocument_ExportPreservesOrder(t *testing.T) {
	doc := domain.NewDocument("Contract text")
	doc.Append(domain.SignatureRecord{
		Signature:   domain.Signature{0xde, 0xad},
		Certificate: domain.Certificate{Name: "Company XYZ", PublicKeyPEM: "pem-a"},
		Timestamp:   "ts-a",
	})
	doc.Append(domain.SignatureRecord{
		Signature:   domain.Signature{0xbe, 0xef},
		Certificate: domain.Certificate{Name: "Supplier ABC", PublicKeyPEM: "pem-b"},
		Timestamp:   "ts-b",
	})

	out, err := doc.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	var decoded domain.ExportedDocument
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}
	if decoded.Content != "Contract text" {
		t.Fatalf("content = %q", decoded.Content)
	}
	if len(decoded.Signatures) != 2 {
		t.Fatalf("got %d signatures, want 2", len(decoded.Signatures))
	}
	if decoded.Signatures[0].Certificate.Name != "Company XYZ" ||
		decoded.Signatures[1].Certificate.Name != "Supplier ABC" {
		t.Fatalf("export reordered signatures: %q then %q",
			decoded.Signatures[0].Certificate.Name, decoded.Signatures[1].Certificate.Name)
	}
}

func TestDocument_ExportDoesNotMutate(t *testing.T) {
	doc := domain.NewDocument("Contract text")
	doc.Append(domain.SignatureRecord{Signature: domain.Signature{1}, Timestamp: "ts"})

	first, err := doc.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	second, err := doc.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if first != second {
		t.Fatalf("export is not deterministic for unchanged state")
	}
	if doc.Len() != 1 {
		t.Fatalf("export mutated the ledger")
	}
}

func TestSignatureRecord_JSONHexRoundTrip(t *testing.T) {
	rec := domain.SignatureRecord{
		Signature:   domain.Signature{0xca, 0xfe, 0x00, 0x01},
		Certificate: domain.Certificate{Name: "Company XYZ", PublicKeyPEM: "pem"},
		Timestamp:   "ts",
	}

	b, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	if raw["signature"] != "cafe0001" {
		t.Fatalf("signature rendered as %v, want hex string", raw["signature"])
	}

	var got domain.SignatureRecord
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal record: %v", err)
	}
	if string(got.Signature) != string(rec.Signature) || got.Certificate != rec.Certificate {
		t.Fatalf("round trip changed the record")
	}
}

func TestTimestamp_Layout(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 34, 56, 789012000, time.UTC)
	ts := domain.Timestamp(at)
	if ts != "2024-05-01T12:34:56.789012+00:00" {
		t.Fatalf("got %q", ts)
	}

	// Non-UTC inputs normalise to UTC before formatting.
	loc := time.FixedZone("plus2", 2*60*60)
	if got := domain.Timestamp(at.In(loc)); got != ts {
		t.Fatalf("non-UTC input formatted as %q, want %q", got, ts)
	}
}
