package accounting_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/finmatrix/internal/apperrors"
	"github.com/SscSPs/finmatrix/internal/core/domain"
	"github.com/SscSPs/finmatrix/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateEntryAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr bool
		errMsg  string
	}{
		{name: "whole amount", amount: "5000000"},
		{name: "two decimals", amount: "1999.99"},
		{name: "trailing zeros are fine", amount: "12.500"},
		{name: "smallest unit", amount: "0.01"},
		{name: "zero", amount: "0", wantErr: true, errMsg: "must be positive"},
		{name: "negative", amount: "-10", wantErr: true, errMsg: "must be positive"},
		{name: "three decimals", amount: "10.005", wantErr: true, errMsg: "more than 2 decimal places"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := accounting.ValidateEntryAmount(decimal.RequireFromString(tt.amount))
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrValidation))
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalBalance(t *testing.T) {
	tests := []struct {
		accountType domain.AccountType
		closing     int64
		want        int64
	}{
		{domain.Asset, 500, 500},
		{domain.Expense, 500, 500},
		{domain.Liability, -500, 500},
		{domain.Equity, -500, 500},
		{domain.Revenue, -500, 500},
		{domain.Revenue, 20, -20}, // debit balance on a revenue account (returns exceeding sales)
	}

	for _, tt := range tests {
		t.Run(string(tt.accountType), func(t *testing.T) {
			got := accounting.NormalBalance(decimal.NewFromInt(tt.closing), tt.accountType)
			assert.True(t, decimal.NewFromInt(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestValidateLedgerBalance(t *testing.T) {
	balanced := []domain.LedgerBalance{
		{AccountName: "Bank", ClosingBalance: decimal.NewFromInt(100)},
		{AccountName: "Sales", ClosingBalance: decimal.NewFromInt(-100)},
	}
	assert.NoError(t, accounting.ValidateLedgerBalance(balanced))
	assert.NoError(t, accounting.ValidateLedgerBalance(nil))

	unbalanced := append(balanced, domain.LedgerBalance{AccountName: "Cash", ClosingBalance: decimal.NewFromInt(1)})
	err := accounting.ValidateLedgerBalance(unbalanced)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sum is 1")
}
