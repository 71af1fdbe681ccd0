package engine_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finmatrix/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func entry(id, debit, credit string, amount int64) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:       id,
		Date:          time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		DebitAccount:  debit,
		CreditAccount: credit,
		Amount:        decimal.NewFromInt(amount),
		ClientID:      "c1",
	}
}

// scenarioEntries is the three-entry capital / purchase / sale example.
func scenarioEntries() []domain.JournalEntry {
	return []domain.JournalEntry{
		entry("1", "Bank", "Share Capital", 5000000),
		entry("2", "Raw Material Purchase", "Accounts Payable", 1200000),
		entry("3", "Accounts Receivable", "Sales", 2500000),
	}
}

// monthEntries is a month of trading for a small manufacturer.
func monthEntries() []domain.JournalEntry {
	return append(scenarioEntries(),
		entry("4", "Factory Wages", "Bank", 300000),
		entry("5", "Office Rent", "Bank", 50000),
		entry("6", "Factory Electricity", "Accounts Payable", 25000),
		entry("7", "Marketing", "Bank", 100000),
		entry("8", "Machinery", "Bank", 800000),
	)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}

func names(ledgers []domain.LedgerBalance) []string {
	out := make([]string, len(ledgers))
	for i, l := range ledgers {
		out[i] = l.AccountName
	}
	return out
}

func byName(ledgers []domain.LedgerBalance) map[string]domain.LedgerBalance {
	out := make(map[string]domain.LedgerBalance, len(ledgers))
	for _, l := range ledgers {
		out[l.AccountName] = l
	}
	return out
}
