package app

import (
	"path/filepath"

	"contractseal/internal/domain"
	certificatesvc "contractseal/internal/services/certificate"
	channelsvc "contractseal/internal/services/channel"
	contractsvc "contractseal/internal/services/contract"
	partysvc "contractseal/internal/services/party"
	"contractseal/internal/store"
)

// Wire bundles the stores and services used by the CLI.
type Wire struct {
	Archive   domain.DocumentArchive
	Parties   domain.PartyService
	Contracts domain.ContractService
	Channel   domain.ChannelService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	archiveDir := cfg.Archive
	if archiveDir == "" {
		archiveDir = filepath.Join(cfg.Home, "archive")
	}
	archive := store.NewFileArchive(archiveDir)

	clock := domain.SystemClock{}
	issuer := certificatesvc.New()

	return &Wire{
		Archive:   archive,
		Parties:   partysvc.New(issuer, cfg.KeyBits),
		Contracts: contractsvc.New(clock, domain.AlwaysTrust{}),
		Channel:   channelsvc.New(clock),
	}, nil
}
