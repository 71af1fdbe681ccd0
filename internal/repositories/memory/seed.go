package memory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/finmatrix/internal/apperrors"
	"github.com/SscSPs/finmatrix/internal/core/domain"
	portsrepo "github.com/SscSPs/finmatrix/internal/core/ports/repositories"
	"github.com/SscSPs/finmatrix/internal/utils"
	"github.com/shopspring/decimal"
)

const (
	DemoClientID = "c1"
	DemoPassword = "demo"
	demoCreator  = "seed"
)

// DemoUsers returns the accounts created by SeedDemoData. Password hashes are left empty.
func DemoUsers() []domain.User {
	return []domain.User{
		{UserID: "u_ca", Name: "Arjun Mehta (FCA)", Email: "arjun@finmatrix.com", Role: domain.RoleCA},
		{UserID: "u_c1", Name: "Tech Solutions Admin", Email: "admin@techsolutions.com", Role: domain.RoleClient, ClientID: DemoClientID},
	}
}

// DemoEntries returns a month of trading for the demo client.
func DemoEntries() []domain.JournalEntry {
	day := func(d int) time.Time { return time.Date(2025, time.October, d, 0, 0, 0, 0, time.UTC) }
	rows := []struct {
		id, desc, debit, credit string
		date                    time.Time
		amount                  int64
	}{
		{"1", "Initial Capital", "Bank", "Share Capital", day(1), 5000000},
		{"2", "Raw Material Purchase", "Raw Material Purchase", "Accounts Payable", day(2), 1200000},
		{"3", "Sales Invoice #001", "Accounts Receivable", "Sales", day(5), 2500000},
		{"4", "Factory Worker Wages", "Factory Wages", "Bank", day(10), 300000},
		{"5", "Office Rent Payment", "Office Rent", "Bank", day(12), 50000},
		{"6", "Electricity Bill (Factory)", "Factory Electricity", "Accounts Payable", day(15), 25000},
		{"7", "Digital Marketing", "Marketing", "Bank", day(18), 100000},
		{"8", "Machine Purchase", "Machinery", "Bank", day(20), 800000},
	}

	entries := make([]domain.JournalEntry, len(rows))
	for i, r := range rows {
		entries[i] = domain.JournalEntry{
			EntryID:       r.id,
			Date:          r.date,
			Description:   r.desc,
			DebitAccount:  r.debit,
			CreditAccount: r.credit,
			Amount:        decimal.NewFromInt(r.amount),
			ClientID:      DemoClientID,
			CreatedAt:     r.date,
			CreatedBy:     demoCreator,
		}
	}
	return entries
}

// SeedDemoData loads the demo users and entries. Running it twice is harmless:
// users that already exist are left alone and entries are only added when the
// demo client has none.
func SeedDemoData(ctx context.Context, repos *portsrepo.RepositoryProvider) error {
	hash, err := utils.HashPassword(DemoPassword)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	now := time.Now().UTC()
	for _, u := range DemoUsers() {
		u.PasswordHash = hash
		u.CreatedAt, u.CreatedBy = now, demoCreator
		u.LastUpdatedAt, u.LastUpdatedBy = now, demoCreator
		if err := repos.UserRepo.SaveUser(ctx, u); err != nil && !errors.Is(err, apperrors.ErrDuplicate) {
			return fmt.Errorf("failed to seed user %s: %w", u.Email, err)
		}
	}

	existing, err := repos.EntryRepo.ListEntriesByClient(ctx, DemoClientID)
	if err != nil {
		return fmt.Errorf("failed to read demo entries: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	if err := repos.EntryRepo.AppendEntries(ctx, DemoEntries()); err != nil {
		return fmt.Errorf("failed to seed demo entries: %w", err)
	}
	return nil
}
