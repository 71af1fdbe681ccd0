package services

import (
	"context"
	"io"

	"github.com/SscSPs/finmatrix/internal/core/domain"
	"github.com/SscSPs/finmatrix/internal/dto"
)

// JournalReaderSvc defines read operations on a client's entry log
type JournalReaderSvc interface {
	// ListEntries returns one page of a client's entries in append order.
	ListEntries(ctx context.Context, clientID string, userID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// JournalWriterSvc defines the producers of journal entries
type JournalWriterSvc interface {
	// CreateEntry validates and appends a single manual entry.
	CreateEntry(ctx context.Context, clientID string, req dto.CreateEntryRequest, userID string) (*domain.JournalEntry, error)

	// ImportEntries parses a CSV upload and appends all of its entries at once.
	ImportEntries(ctx context.Context, clientID string, r io.Reader, userID string) (*dto.ImportEntriesResponse, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
