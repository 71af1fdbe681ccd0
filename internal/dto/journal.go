package dto

import (
	"time"

	"github.com/SscSPs/finmatrix/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest defines the data needed to record a manual journal entry.
// Amount must be positive with at most two decimal places; this is checked by the service.
type CreateEntryRequest struct {
	Date          string          `json:"date" binding:"omitempty,datetime=2006-01-02" example:"2025-10-01"` // defaults to today
	Description   string          `json:"description" binding:"max=255" example:"Raw Material Purchase"`
	DebitAccount  string          `json:"debitAccount" binding:"required,max=100" example:"Purchase of Raw Material"`
	CreditAccount string          `json:"creditAccount" binding:"required,max=100,nefield=DebitAccount" example:"Cash"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"150000.00"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID       string          `json:"entryID"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	DebitAccount  string          `json:"debitAccount"`
	CreditAccount string          `json:"creditAccount"`
	Amount        decimal.Decimal `json:"amount"`
	ClientID      string          `json:"clientID"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ListEntriesParams defines query parameters for listing journal entries.
type ListEntriesParams struct {
	Limit     int    `form:"limit,default=50" binding:"min=0,max=500"`
	NextToken string `form:"nextToken"`
}

// ListEntriesResponse wraps a page of journal entries.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ImportEntriesResponse reports the outcome of a CSV import.
type ImportEntriesResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ToEntryResponse converts a domain.JournalEntry to EntryResponse DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	return EntryResponse{
		EntryID:       e.EntryID,
		Date:          e.Date.Format(time.DateOnly),
		Description:   e.Description,
		DebitAccount:  e.DebitAccount,
		CreditAccount: e.CreditAccount,
		Amount:        e.Amount,
		ClientID:      e.ClientID,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
	}
}

// ToEntryResponses converts a slice of domain.JournalEntry to []EntryResponse.
func ToEntryResponses(entries []domain.JournalEntry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}
