package store_test

import (
	"testing"

	"contractseal/internal/domain"
	"contractseal/internal/store"
)

func exportFixture(id string) domain.ExportedDocument {
	return domain.ExportedDocument{
		ID:      domain.DocumentID(id),
		Content: "Contract text",
		Signatures: []domain.SignatureRecord{
			{
				Signature:   domain.Signature{0xca, 0xfe},
				Certificate: domain.Certificate{Name: "Company XYZ", PublicKeyPEM: "pem"},
				Timestamp:   "2024-05-01T12:34:56.789012+00:00",
			},
		},
	}
}

func TestArchive_SaveLoad_OK(t *testing.T) {
	var archive domain.DocumentArchive = store.NewFileArchive(t.TempDir())
	doc := exportFixture("doc-1")

	if err := archive.Save(doc); err != nil {
		t.Fatalf("save document: %v", err)
	}
	got, found, err := archive.Load(doc.ID)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	if !found {
		t.Fatalf("saved document not found")
	}
	if got.Content != doc.Content || len(got.Signatures) != 1 {
		t.Fatalf("loaded document differs from saved")
	}
	if got.Signatures[0].Certificate.Name != "Company XYZ" {
		t.Fatalf("signature record not preserved")
	}
}

func TestArchive_Load_Missing(t *testing.T) {
	archive := store.NewFileArchive(t.TempDir())

	_, found, err := archive.Load("no-such-doc")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found {
		t.Fatalf("missing document reported as found")
	}
}

func TestArchive_List_Sorted(t *testing.T) {
	archive := store.NewFileArchive(t.TempDir())
	for _, id := range []string{"b-doc", "a-doc", "c-doc"} {
		if err := archive.Save(exportFixture(id)); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	ids, err := archive.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) != 3 || ids[0] != "a-doc" || ids[1] != "b-doc" || ids[2] != "c-doc" {
		t.Fatalf("got %v", ids)
	}
}

func TestArchive_List_EmptyDir(t *testing.T) {
	archive := store.NewFileArchive(t.TempDir() + "/never-created")
	ids, err := archive.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("got %v, want none", ids)
	}
}

func TestArchive_Sealed_RoundTrip(t *testing.T) {
	archive := store.NewFileArchive(t.TempDir())
	doc := exportFixture("doc-sealed")

	if err := archive.SaveSealed(doc, "pass"); err != nil {
		t.Fatalf("save sealed: %v", err)
	}
	got, err := archive.LoadSealed(doc.ID, "pass")
	if err != nil {
		t.Fatalf("load sealed: %v", err)
	}
	if got.Content != doc.Content || len(got.Signatures) != 1 {
		t.Fatalf("sealed round trip changed the document")
	}
}

func TestArchive_Sealed_WrongPassphrase_Fails(t *testing.T) {
	archive := store.NewFileArchive(t.TempDir())
	doc := exportFixture("doc-sealed")

	if err := archive.SaveSealed(doc, "pass"); err != nil {
		t.Fatalf("save sealed: %v", err)
	}
	if _, err := archive.LoadSealed(doc.ID, "wrong"); err == nil {
		t.Fatalf("sealed document opened with the wrong passphrase")
	}
}
