package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"contractseal/internal/domain"
)

const (
	docExt    = ".json"
	sealedExt = ".sealed"
)

// FileArchive stores exported documents on disk, one file per document ID.
type FileArchive struct {
	dir string
	mu  sync.Mutex
}

// NewFileArchive returns an archive rooted at dir. The directory is created
// on first write.
func NewFileArchive(dir string) *FileArchive { return &FileArchive{dir: dir} }

func (a *FileArchive) path(id domain.DocumentID) string {
	return filepath.Join(a.dir, string(id)+docExt)
}

func (a *FileArchive) sealedPath(id domain.DocumentID) string {
	return filepath.Join(a.dir, string(id)+sealedExt)
}

// Save writes doc as plain indented JSON.
func (a *FileArchive) Save(doc domain.ExportedDocument) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := os.MkdirAll(a.dir, 0o700); err != nil {
		return err
	}
	return writeJSON(a.path(doc.ID), doc, 0o600)
}

// Load reads the document with the given ID. A missing document reports
// found=false rather than an error.
func (a *FileArchive) Load(id domain.DocumentID) (domain.ExportedDocument, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var doc domain.ExportedDocument
	found, err := readJSON(a.path(id), &doc)
	return doc, found, err
}

// List returns the IDs of all plainly archived documents, sorted.
func (a *FileArchive) List() ([]domain.DocumentID, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	entries, err := os.ReadDir(a.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []domain.DocumentID
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, docExt) {
			continue
		}
		ids = append(ids, domain.DocumentID(strings.TrimSuffix(name, docExt)))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// SaveSealed writes doc encrypted under passphrase next to any plain copy.
func (a *FileArchive) SaveSealed(doc domain.ExportedDocument, passphrase string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := os.MkdirAll(a.dir, 0o700); err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	N, r, p := scryptParamsDefault()
	b, err := seal(passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	return os.WriteFile(a.sealedPath(doc.ID), b, 0o600)
}

// LoadSealed decrypts and reads the sealed document with the given ID.
func (a *FileArchive) LoadSealed(id domain.DocumentID, passphrase string) (domain.ExportedDocument, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	b, err := os.ReadFile(a.sealedPath(id))
	if err != nil {
		return domain.ExportedDocument{}, err
	}
	raw, err := open(passphrase, b)
	if err != nil {
		return domain.ExportedDocument{}, err
	}
	var doc domain.ExportedDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.ExportedDocument{}, fmt.Errorf("decode sealed document: %w", err)
	}
	return doc, nil
}

// Compile-time assertion that FileArchive implements domain.DocumentArchive.
var _ domain.DocumentArchive = (*FileArchive)(nil)
