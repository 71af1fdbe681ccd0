package domain

import "github.com/shopspring/decimal"

// LedgerBalance is the aggregated position of one account over a set of entries.
// ClosingBalance is always TotalDebit - TotalCredit: positive means a net debit
// balance (normal for assets and expenses), negative a net credit balance.
type LedgerBalance struct {
	AccountName    string          `json:"accountName"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	Type           AccountType     `json:"type"`
	// Unlisted marks an account missing from the chart; Type is then the fallback.
	Unlisted bool `json:"unlisted,omitempty"`
}
