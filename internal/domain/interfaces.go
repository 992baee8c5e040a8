package domain

import "crypto/rsa"

// PartyService creates signing parties: a key pair plus a self-asserted
// certificate naming the holder.
type PartyService interface {
	GenerateParty(name string) (Party, error)
	FingerprintParty(p Party) string
}

// CertificateIssuer builds self-asserted certificates from a subject name
// and a public key.
type CertificateIssuer interface {
	Issue(subjectName string, pub *rsa.PublicKey) (Certificate, error)
}

// ContractService signs documents and verifies recorded signatures.
type ContractService interface {
	Sign(doc *Document, signer Party) error
	Countersign(doc *Document, signer Party) error
	VerifyRecord(content string, rec SignatureRecord) (bool, error)
}

// ChannelService seals and opens timestamp-bound confidential messages.
type ChannelService interface {
	Seal(message string, recipient *rsa.PublicKey) (EncryptedMessage, error)
	Open(ciphertext []byte, recipient *rsa.PrivateKey, expectedTimestamp string) (string, error)
}

// DocumentArchive persists exported documents. Private keys never reach
// the archive.
type DocumentArchive interface {
	Save(doc ExportedDocument) error
	Load(id DocumentID) (ExportedDocument, bool, error)
	List() ([]DocumentID, error)
	SaveSealed(doc ExportedDocument, passphrase string) error
	LoadSealed(id DocumentID, passphrase string) (ExportedDocument, error)
}
