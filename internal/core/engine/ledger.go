package engine

import (
	"github.com/SscSPs/finmatrix/internal/core/domain"
	"github.com/shopspring/decimal"
)

type accumulator struct {
	name   string
	debit  decimal.Decimal
	credit decimal.Decimal
}

// GenerateLedgers reduces entries to one balance per distinct account name.
//
// Balances come out in first-seen order, the debit side of an entry being seen
// before its credit side. Amounts are only ever added, so the balances do not
// depend on entry order. Nothing is rejected here: a non-positive amount is
// summed like any other.
func (e *Engine) GenerateLedgers(entries []domain.JournalEntry) []domain.LedgerBalance {
	index := make(map[string]int)
	slots := make([]accumulator, 0)

	slot := func(name string) int {
		i, ok := index[name]
		if !ok {
			i = len(slots)
			index[name] = i
			slots = append(slots, accumulator{name: name, debit: decimal.Zero, credit: decimal.Zero})
		}
		return i
	}

	for _, entry := range entries {
		d := slot(entry.DebitAccount)
		slots[d].debit = slots[d].debit.Add(entry.Amount)

		c := slot(entry.CreditAccount)
		slots[c].credit = slots[c].credit.Add(entry.Amount)
	}

	ledgers := make([]domain.LedgerBalance, 0, len(slots))
	for _, s := range slots {
		ledgers = append(ledgers, domain.LedgerBalance{
			AccountName:    s.name,
			TotalDebit:     s.debit,
			TotalCredit:    s.credit,
			ClosingBalance: s.debit.Sub(s.credit),
			Type:           e.chart.Resolve(s.name).Type,
			Unlisted:       !e.chart.Known(s.name),
		})
	}
	return ledgers
}

// sumClosing adds up raw closing balances.
func sumClosing(ledgers []domain.LedgerBalance) decimal.Decimal {
	total := decimal.Zero
	for _, l := range ledgers {
		total = total.Add(l.ClosingBalance)
	}
	return total
}
