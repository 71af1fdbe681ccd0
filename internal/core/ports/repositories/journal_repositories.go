package repositories

import (
	"context"

	"github.com/SscSPs/finmatrix/internal/core/domain"
)

// EntryReader defines read operations for the journal entry log
type EntryReader interface {
	// ListEntriesByClient returns a snapshot of one client's entries in append order.
	// The returned slice is owned by the caller.
	ListEntriesByClient(ctx context.Context, clientID string) ([]domain.JournalEntry, error)
}

// EntryWriter defines write operations for the journal entry log
type EntryWriter interface {
	// AppendEntries adds entries to the log. Either all entries are appended or none.
	AppendEntries(ctx context.Context, entries []domain.JournalEntry) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
