package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/finmatrix/internal/core/domain"
	"github.com/SscSPs/finmatrix/internal/core/engine"
	portsrepo "github.com/SscSPs/finmatrix/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finmatrix/internal/core/ports/services"
	"github.com/SscSPs/finmatrix/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	entryRepo portsrepo.EntryReader
	engine    *engine.Engine
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingClientAuthorizer sets the client authorizer for the reporting service.
func WithReportingClientAuthorizer(authorizer portssvc.ClientAuthorizerSvc) ReportingServiceOption {
	return func(s *reportingService) {
		s.ClientAuthorizer = authorizer
	}
}

// WithReportingEngine replaces the default engine, e.g. to classify with a custom chart.
func WithReportingEngine(eng *engine.Engine) ReportingServiceOption {
	return func(s *reportingService) {
		s.engine = eng
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(entryRepo portsrepo.EntryReader, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		entryRepo: entryRepo,
		engine:    engine.New(nil),
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// snapshot returns the client's entries after authorization.
func (s *reportingService) snapshot(ctx context.Context, clientID, userID string) ([]domain.JournalEntry, error) {
	if err := s.AuthorizeClient(ctx, userID, clientID); err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListEntriesByClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve entries", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to retrieve entries: %w", err)
	}
	return entries, nil
}

// checkLedgers asserts the aggregation invariants and logs accounts missing from
// the chart. Each entry posts the same amount to both sides, so the closing
// balances always net to zero; a failure here means the aggregation is broken.
func (s *reportingService) checkLedgers(ctx context.Context, clientID string, ledgers []domain.LedgerBalance) {
	if err := accounting.ValidateLedgerBalance(ledgers); err != nil {
		s.LogError(ctx, err, "Ledger integrity check failed", slog.String("client_id", clientID))
	}
	for _, l := range ledgers {
		if l.Unlisted {
			s.LogInfo(ctx, "Account not in chart, classified as expense",
				slog.String("client_id", clientID),
				slog.String("account", l.AccountName))
		}
	}
}

// Ledgers returns the general ledger of a client in first-seen account order.
func (s *reportingService) Ledgers(ctx context.Context, clientID string, userID string) ([]domain.LedgerBalance, error) {
	entries, err := s.snapshot(ctx, clientID, userID)
	if err != nil {
		return nil, err
	}

	ledgers := s.engine.GenerateLedgers(entries)
	s.checkLedgers(ctx, clientID, ledgers)

	s.LogInfo(ctx, "Ledgers generated successfully",
		slog.String("client_id", clientID),
		slog.Int("entry_count", len(entries)),
		slog.Int("account_count", len(ledgers)))
	return ledgers, nil
}

// FinancialReport generates trading account, P&L, balance sheet and cost sheet.
func (s *reportingService) FinancialReport(ctx context.Context, clientID string, userID string) (*domain.FinancialReportData, error) {
	entries, err := s.snapshot(ctx, clientID, userID)
	if err != nil {
		return nil, err
	}

	ledgers := s.engine.GenerateLedgers(entries)
	s.checkLedgers(ctx, clientID, ledgers)
	report := s.engine.ReportFromLedgers(ledgers)

	s.LogInfo(ctx, "Financial report generated successfully",
		slog.String("client_id", clientID),
		slog.Int("entry_count", len(entries)),
		slog.String("net_profit", report.PnL.NetProfit.String()))
	return &report, nil
}

// ChartOfAccounts returns the chart the engine classifies with.
func (s *reportingService) ChartOfAccounts(ctx context.Context) []domain.AccountHead {
	return s.engine.Chart().Accounts()
}
