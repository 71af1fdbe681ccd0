package accounting

import (
	"fmt"

	"github.com/SscSPs/finmatrix/internal/apperrors"
	"github.com/SscSPs/finmatrix/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountPrecision is the number of decimal places an entry amount may carry.
const AmountPrecision = 2

// ValidateEntryAmount enforces the amount policy for new entries: strictly
// positive and at most two decimal places. The reporting engine itself never
// rejects an amount, so every producer of entries must call this first.
func ValidateEntryAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, amount.String())
	}
	if !amount.Equal(amount.Round(AmountPrecision)) {
		return fmt.Errorf("%w: amount %s has more than %d decimal places", apperrors.ErrValidation, amount.String(), AmountPrecision)
	}
	return nil
}

// NormalBalance presents a raw closing balance (debit minus credit) with the sign
// of the account's normal side:
// ASSET/EXPENSE -> unchanged (debit positive)
// LIABILITY/EQUITY/REVENUE -> negated (credit positive)
func NormalBalance(closing decimal.Decimal, accountType domain.AccountType) decimal.Decimal {
	switch accountType {
	case domain.Liability, domain.Equity, domain.Revenue:
		return closing.Neg()
	default:
		return closing
	}
}

// ValidateLedgerBalance checks that a complete ledger set nets to zero, which holds
// for any set produced from two-legged entries.
func ValidateLedgerBalance(ledgers []domain.LedgerBalance) error {
	sum := decimal.Zero
	for _, l := range ledgers {
		sum = sum.Add(l.ClosingBalance)
	}

	if !sum.IsZero() {
		return fmt.Errorf("ledger balances do not net to zero: sum is %s", sum.String())
	}

	return nil
}
