package engine

import (
	"github.com/SscSPs/finmatrix/internal/core/domain"
)

// BuildCostSheet groups ledgers by cost category and computes the waterfall
// prime cost -> works cost -> cost of production -> cost of sales.
//
// Cost buckets are independent of the statement buckets: a ledger can sit in
// both. Sums use the raw closing balance; a negative category total (a credit
// note, say) is carried through as is.
func (e *Engine) BuildCostSheet(ledgers []domain.LedgerBalance) domain.CostSheet {
	sheet := emptyCostSheet()

	for _, ledger := range ledgers {
		category := e.chart.Resolve(ledger.AccountName).CostCategory
		if _, ok := sheet.Details[category]; !ok {
			// NotApplicable, or a category this build does not know.
			continue
		}
		sheet.Details[category] = append(sheet.Details[category], ledger)
	}

	d := sheet.Details
	sheet.PrimeCost = sumClosing(d[domain.DirectMaterial]).
		Add(sumClosing(d[domain.DirectLabor])).
		Add(sumClosing(d[domain.DirectExpense]))
	sheet.WorksCost = sheet.PrimeCost.Add(sumClosing(d[domain.FactoryOverhead]))
	sheet.CostOfProduction = sheet.WorksCost.Add(sumClosing(d[domain.AdminOverhead]))
	sheet.CostOfSales = sheet.CostOfProduction.Add(sumClosing(d[domain.SellingOverhead]))

	return sheet
}
