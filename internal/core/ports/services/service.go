package services

// ServiceContainer bundles the services the HTTP layer is built from. Journal
// and Reporting share the User service as their client authorizer.
type ServiceContainer struct {
	User      UserSvcFacade
	Journal   JournalSvcFacade
	Reporting ReportingService
}
