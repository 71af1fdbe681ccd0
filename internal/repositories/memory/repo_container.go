package memory

import (
	portsrepo "github.com/SscSPs/finmatrix/internal/core/ports/repositories"
)

// NewRepositoryProvider creates all in-memory repositories and returns them in a provider struct.
func NewRepositoryProvider() *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		EntryRepo: newEntryRepository(),
		UserRepo:  newUserRepository(),
	}
}
