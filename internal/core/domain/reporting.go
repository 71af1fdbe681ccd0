package domain

import (
	"github.com/shopspring/decimal"
)

// TradingAccount holds direct revenue and direct cost ledgers.
type TradingAccount struct {
	Revenue      []LedgerBalance `json:"revenue"`
	COGS         []LedgerBalance `json:"cogs"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"` // Absolute value of the credit balances
	TotalCOGS    decimal.Decimal `json:"totalCOGS"`
	GrossProfit  decimal.Decimal `json:"grossProfit"`
}

// ProfitAndLoss holds indirect income and expense ledgers.
type ProfitAndLoss struct {
	Income               []LedgerBalance `json:"income"`
	Expenses             []LedgerBalance `json:"expenses"`
	TotalIndirectIncome  decimal.Decimal `json:"totalIndirectIncome"`
	TotalIndirectExpense decimal.Decimal `json:"totalIndirectExpense"`
	NetProfit            decimal.Decimal `json:"netProfit"`
}

// BalanceSheet groups the permanent accounts. Liabilities and equity keep their raw
// (credit-negative) closing balances and no combined total is computed here; closing
// the accounting equation with the period's net profit is left to the presenter.
type BalanceSheet struct {
	Assets      []LedgerBalance `json:"assets"`
	Liabilities []LedgerBalance `json:"liabilities"`
	Equity      []LedgerBalance `json:"equity"`
	TotalAssets decimal.Decimal `json:"totalAssets"`
}

// CostSheet is the manufacturing cost waterfall.
type CostSheet struct {
	PrimeCost        decimal.Decimal                  `json:"primeCost"`
	WorksCost        decimal.Decimal                  `json:"worksCost"`
	CostOfProduction decimal.Decimal                  `json:"costOfProduction"`
	CostOfSales      decimal.Decimal                  `json:"costOfSales"`
	Details          map[CostCategory][]LedgerBalance `json:"details"`
}

// FinancialReportData is the full statement bundle for one set of entries.
type FinancialReportData struct {
	Trading      TradingAccount `json:"trading"`
	PnL          ProfitAndLoss  `json:"pnl"`
	BalanceSheet BalanceSheet   `json:"balanceSheet"`
	CostSheet    CostSheet      `json:"costSheet"`
}
