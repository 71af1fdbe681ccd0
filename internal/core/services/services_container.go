package services

import (
	portsrepo "github.com/SscSPs/finmatrix/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finmatrix/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The user service decides client visibility for the others
	container.User = NewUserService(repos.UserRepo)

	container.Journal = NewJournalService(
		repos.EntryRepo,
		WithJournalClientAuthorizer(container.User),
	)
	container.Reporting = NewReportingService(
		repos.EntryRepo,
		WithReportingClientAuthorizer(container.User),
	)

	return container
}
