package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a single two-legged posting: Amount is debited to DebitAccount
// and credited to CreditAccount. Entries are append-only once stored.
type JournalEntry struct {
	EntryID       string          `json:"entryID" validate:"required"`
	Date          time.Time       `json:"date" validate:"required"`
	Description   string          `json:"description" validate:"max=255"`
	DebitAccount  string          `json:"debitAccount" validate:"required,max=100"`
	CreditAccount string          `json:"creditAccount" validate:"required,max=100,nefield=DebitAccount"`
	Amount        decimal.Decimal `json:"amount"` // Positive; guarded by accounting.ValidateEntryAmount
	ClientID      string          `json:"clientID" validate:"required"` // Tenant the entry belongs to
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"` // UserID Reference
}
