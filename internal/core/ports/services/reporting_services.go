package services

import (
	"context"

	"github.com/SscSPs/finmatrix/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// Ledgers returns the general ledger (one balance per account) of a client.
	Ledgers(ctx context.Context, clientID string, userID string) ([]domain.LedgerBalance, error)

	// FinancialReport returns trading account, P&L, balance sheet and cost sheet of a client.
	FinancialReport(ctx context.Context, clientID string, userID string) (*domain.FinancialReportData, error)

	// ChartOfAccounts returns the chart the reports are classified with.
	ChartOfAccounts(ctx context.Context) []domain.AccountHead
}
