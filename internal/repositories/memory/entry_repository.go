package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/finmatrix/internal/core/domain"
	portsrepo "github.com/SscSPs/finmatrix/internal/core/ports/repositories"
)

// EntryRepository keeps the journal entry log in process memory, one
// append-only slice per client.
type EntryRepository struct {
	mu       sync.RWMutex
	byClient map[string][]domain.JournalEntry
}

func newEntryRepository() *EntryRepository {
	return &EntryRepository{byClient: make(map[string][]domain.JournalEntry)}
}

// Ensure EntryRepository implements portsrepo.EntryRepositoryFacade
var _ portsrepo.EntryRepositoryFacade = (*EntryRepository)(nil)

// AppendEntries appends under a single write lock so readers never observe a
// partial batch.
func (r *EntryRepository) AppendEntries(ctx context.Context, entries []domain.JournalEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range entries {
		r.byClient[e.ClientID] = append(r.byClient[e.ClientID], e)
	}
	return nil
}

func (r *EntryRepository) ListEntriesByClient(ctx context.Context, clientID string) ([]domain.JournalEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	log := r.byClient[clientID]
	out := make([]domain.JournalEntry, len(log))
	copy(out, log)
	return out, nil
}
