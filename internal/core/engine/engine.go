// Package engine turns journal entries into ledgers and financial statements.
//
// Every function in this package is a pure computation over its arguments: no
// I/O, no shared mutable state, no errors. Callers own tenant filtering and
// input validation.
package engine

import "github.com/SscSPs/finmatrix/internal/core/domain"

// Engine runs the reporting pipeline against one chart of accounts.
type Engine struct {
	chart *ChartResolver
}

// New creates an engine. A nil chart means DefaultChart.
func New(chart *ChartResolver) *Engine {
	if chart == nil {
		chart = NewChartResolver(DefaultChart())
	}
	return &Engine{chart: chart}
}

// Chart returns the resolver the engine classifies with.
func (e *Engine) Chart() *ChartResolver {
	return e.chart
}

// GenerateReport runs the whole pipeline over raw entries.
func (e *Engine) GenerateReport(entries []domain.JournalEntry) domain.FinancialReportData {
	return e.ReportFromLedgers(e.GenerateLedgers(entries))
}

// ReportFromLedgers classifies already aggregated ledgers into the statements and
// the cost sheet.
func (e *Engine) ReportFromLedgers(ledgers []domain.LedgerBalance) domain.FinancialReportData {
	report := e.GenerateStatements(ledgers)
	report.CostSheet = e.BuildCostSheet(ledgers)
	return report
}
