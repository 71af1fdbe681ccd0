package engine

import (
	"github.com/SscSPs/finmatrix/internal/core/domain"
	"github.com/shopspring/decimal"
)

type bucket int

const (
	bucketTradingRevenue bucket = iota
	bucketTradingCOGS
	bucketPnLIncome
	bucketPnLExpenses
	bucketAssets
	bucketLiabilities
	bucketEquity
)

type classKey struct {
	accountType domain.AccountType
	isDirect    bool
}

// statementBuckets decides where a ledger is reported. The direct flag only
// matters for revenue and expense accounts.
var statementBuckets = map[classKey]bucket{
	{domain.Revenue, true}:    bucketTradingRevenue,
	{domain.Revenue, false}:   bucketPnLIncome,
	{domain.Expense, true}:    bucketTradingCOGS,
	{domain.Expense, false}:   bucketPnLExpenses,
	{domain.Asset, true}:      bucketAssets,
	{domain.Asset, false}:     bucketAssets,
	{domain.Liability, true}:  bucketLiabilities,
	{domain.Liability, false}: bucketLiabilities,
	{domain.Equity, true}:     bucketEquity,
	{domain.Equity, false}:    bucketEquity,
}

// GenerateStatements classifies ledgers into the trading account, the P&L and
// the balance sheet and derives their totals. The returned cost sheet is empty;
// BuildCostSheet fills it.
//
// Each ledger is classified by resolving its name against the chart, so a ledger
// built with another chart is reclassified consistently.
func (e *Engine) GenerateStatements(ledgers []domain.LedgerBalance) domain.FinancialReportData {
	buckets := map[bucket][]domain.LedgerBalance{
		bucketTradingRevenue: {},
		bucketTradingCOGS:    {},
		bucketPnLIncome:      {},
		bucketPnLExpenses:    {},
		bucketAssets:         {},
		bucketLiabilities:    {},
		bucketEquity:         {},
	}

	for _, ledger := range ledgers {
		head := e.chart.Resolve(ledger.AccountName)
		b, ok := statementBuckets[classKey{head.Type, head.IsDirect}]
		if !ok {
			// Only reachable with a custom chart carrying an unknown type.
			continue
		}
		buckets[b] = append(buckets[b], ledger)
	}

	// Revenue and income are credit balances, i.e. negative closings.
	totalRevenue := sumClosing(buckets[bucketTradingRevenue]).Abs()
	totalCOGS := sumClosing(buckets[bucketTradingCOGS])
	grossProfit := totalRevenue.Sub(totalCOGS)

	totalIndirectIncome := sumClosing(buckets[bucketPnLIncome]).Abs()
	totalIndirectExpense := sumClosing(buckets[bucketPnLExpenses])
	netProfit := grossProfit.Add(totalIndirectIncome).Sub(totalIndirectExpense)

	return domain.FinancialReportData{
		Trading: domain.TradingAccount{
			Revenue:      buckets[bucketTradingRevenue],
			COGS:         buckets[bucketTradingCOGS],
			TotalRevenue: totalRevenue,
			TotalCOGS:    totalCOGS,
			GrossProfit:  grossProfit,
		},
		PnL: domain.ProfitAndLoss{
			Income:               buckets[bucketPnLIncome],
			Expenses:             buckets[bucketPnLExpenses],
			TotalIndirectIncome:  totalIndirectIncome,
			TotalIndirectExpense: totalIndirectExpense,
			NetProfit:            netProfit,
		},
		BalanceSheet: domain.BalanceSheet{
			Assets:      buckets[bucketAssets],
			Liabilities: buckets[bucketLiabilities],
			Equity:      buckets[bucketEquity],
			TotalAssets: sumClosing(buckets[bucketAssets]),
		},
		CostSheet: emptyCostSheet(),
	}
}

func emptyCostSheet() domain.CostSheet {
	details := make(map[domain.CostCategory][]domain.LedgerBalance, len(domain.CostCategories))
	for _, category := range domain.CostCategories {
		details[category] = []domain.LedgerBalance{}
	}
	return domain.CostSheet{
		PrimeCost:        decimal.Zero,
		WorksCost:        decimal.Zero,
		CostOfProduction: decimal.Zero,
		CostOfSales:      decimal.Zero,
		Details:          details,
	}
}
