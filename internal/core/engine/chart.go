package engine

import "github.com/SscSPs/finmatrix/internal/core/domain"

// fallbackCode is the code reported for account names missing from the chart.
const fallbackCode = "999"

// DefaultChart returns the standard chart of accounts for a manufacturing business.
// A fresh slice is returned on every call.
func DefaultChart() []domain.AccountHead {
	return []domain.AccountHead{
		{Code: "101", Name: "Cash", Type: domain.Asset, CostCategory: domain.NotApplicable},
		{Code: "102", Name: "Bank", Type: domain.Asset, CostCategory: domain.NotApplicable},
		{Code: "103", Name: "Accounts Receivable", Type: domain.Asset, CostCategory: domain.NotApplicable},
		{Code: "104", Name: "Machinery", Type: domain.Asset, CostCategory: domain.NotApplicable},

		{Code: "201", Name: "Accounts Payable", Type: domain.Liability, CostCategory: domain.NotApplicable},
		{Code: "202", Name: "Bank Loan", Type: domain.Liability, CostCategory: domain.NotApplicable},

		{Code: "301", Name: "Share Capital", Type: domain.Equity, CostCategory: domain.NotApplicable},
		{Code: "302", Name: "Retained Earnings", Type: domain.Equity, CostCategory: domain.NotApplicable},

		{Code: "401", Name: "Sales", Type: domain.Revenue, CostCategory: domain.NotApplicable, IsDirect: true},
		{Code: "402", Name: "Service Income", Type: domain.Revenue, CostCategory: domain.NotApplicable, IsDirect: true},

		{Code: "501", Name: "Raw Material Purchase", Type: domain.Expense, CostCategory: domain.DirectMaterial, IsDirect: true},
		{Code: "502", Name: "Factory Wages", Type: domain.Expense, CostCategory: domain.DirectLabor, IsDirect: true},
		{Code: "503", Name: "Factory Electricity", Type: domain.Expense, CostCategory: domain.FactoryOverhead, IsDirect: true},
		{Code: "504", Name: "Office Rent", Type: domain.Expense, CostCategory: domain.AdminOverhead},
		{Code: "505", Name: "Salaries (Admin)", Type: domain.Expense, CostCategory: domain.AdminOverhead},
		{Code: "506", Name: "Marketing", Type: domain.Expense, CostCategory: domain.SellingOverhead},
	}
}

// ChartResolver maps account names to their chart of accounts metadata.
// It is immutable after construction and safe for concurrent use.
type ChartResolver struct {
	heads  []domain.AccountHead
	byName map[string]int
}

// NewChartResolver indexes heads by exact name. When a name occurs twice the
// first head wins.
func NewChartResolver(heads []domain.AccountHead) *ChartResolver {
	r := &ChartResolver{
		heads:  make([]domain.AccountHead, len(heads)),
		byName: make(map[string]int, len(heads)),
	}
	copy(r.heads, heads)
	for i, h := range r.heads {
		if _, exists := r.byName[h.Name]; !exists {
			r.byName[h.Name] = i
		}
	}
	return r
}

// Resolve returns the head registered under accountName. Unknown names are not an
// error: they resolve to an indirect expense outside the cost sheet, so every
// entry can still be classified.
func (r *ChartResolver) Resolve(accountName string) domain.AccountHead {
	if i, ok := r.byName[accountName]; ok {
		return r.heads[i]
	}
	return domain.AccountHead{
		Code:         fallbackCode,
		Name:         accountName,
		Type:         domain.Expense,
		CostCategory: domain.NotApplicable,
		IsDirect:     false,
	}
}

// Known reports whether accountName is part of the chart.
func (r *ChartResolver) Known(accountName string) bool {
	_, ok := r.byName[accountName]
	return ok
}

// Accounts returns a copy of the chart in its original order.
func (r *ChartResolver) Accounts() []domain.AccountHead {
	out := make([]domain.AccountHead, len(r.heads))
	copy(out, r.heads)
	return out
}
