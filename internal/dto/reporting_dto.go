package dto

import (
	"github.com/SscSPs/finmatrix/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgersResponse represents the general ledger of one client
type LedgersResponse struct {
	ClientID string                 `json:"clientID"`
	Rows     []domain.LedgerBalance `json:"rows"`
	Totals   struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

// BalanceSheetSummary closes the accounting equation for display.
// Liabilities and equity are shown in their normal (credit) sign and the
// period's net profit is carried into the equity side.
type BalanceSheetSummary struct {
	TotalAssets               decimal.Decimal `json:"totalAssets"`
	TotalLiabilities          decimal.Decimal `json:"totalLiabilities"`
	TotalEquity               decimal.Decimal `json:"totalEquity"`
	NetProfit                 decimal.Decimal `json:"netProfit"`
	TotalLiabilitiesAndEquity decimal.Decimal `json:"totalLiabilitiesAndEquity"`
	Balanced                  bool            `json:"balanced"`
}

// FinancialReportResponse represents the full report bundle of one client
type FinancialReportResponse struct {
	ClientID            string                     `json:"clientID"`
	Currency            string                     `json:"currency"`
	Report              domain.FinancialReportData `json:"report"`
	BalanceSheetSummary BalanceSheetSummary        `json:"balanceSheetSummary"`
}

// ToLedgersResponse converts ledgers to the API response and adds column totals.
func ToLedgersResponse(clientID string, ledgers []domain.LedgerBalance) LedgersResponse {
	resp := LedgersResponse{ClientID: clientID, Rows: ledgers}
	resp.Totals.Debit = decimal.Zero
	resp.Totals.Credit = decimal.Zero
	for _, l := range ledgers {
		resp.Totals.Debit = resp.Totals.Debit.Add(l.TotalDebit)
		resp.Totals.Credit = resp.Totals.Credit.Add(l.TotalCredit)
	}
	return resp
}

// ToBalanceSheetSummary derives the closed balance sheet totals from a report.
func ToBalanceSheetSummary(report *domain.FinancialReportData) BalanceSheetSummary {
	liabilities := decimal.Zero
	for _, l := range report.BalanceSheet.Liabilities {
		liabilities = liabilities.Sub(l.ClosingBalance)
	}
	equity := decimal.Zero
	for _, l := range report.BalanceSheet.Equity {
		equity = equity.Sub(l.ClosingBalance)
	}
	total := liabilities.Add(equity).Add(report.PnL.NetProfit)

	return BalanceSheetSummary{
		TotalAssets:               report.BalanceSheet.TotalAssets,
		TotalLiabilities:          liabilities,
		TotalEquity:               equity,
		NetProfit:                 report.PnL.NetProfit,
		TotalLiabilitiesAndEquity: total,
		Balanced:                  total.Equal(report.BalanceSheet.TotalAssets),
	}
}

// ToFinancialReportResponse wraps a report for the API.
func ToFinancialReportResponse(clientID, currency string, report *domain.FinancialReportData) FinancialReportResponse {
	return FinancialReportResponse{
		ClientID:            clientID,
		Currency:            currency,
		Report:              *report,
		BalanceSheetSummary: ToBalanceSheetSummary(report),
	}
}
