package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/finmatrix/internal/apperrors"
	"github.com/SscSPs/finmatrix/internal/core/domain"
	portsrepo "github.com/SscSPs/finmatrix/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finmatrix/internal/core/ports/services"
	"github.com/SscSPs/finmatrix/internal/dto"
	"github.com/SscSPs/finmatrix/internal/importer"
	"github.com/SscSPs/finmatrix/internal/utils"
	"github.com/SscSPs/finmatrix/internal/utils/accounting"
	"github.com/SscSPs/finmatrix/internal/utils/pagination"
)

const (
	defaultEntryPageSize = 50
	maxEntryPageSize     = 500
)

// journalService is the only producer of journal entries. Every entry it
// appends has passed the amount guard and struct validation.
type journalService struct {
	BaseService
	entryRepo portsrepo.EntryRepositoryFacade
	validate  *validator.Validate
	now       func() time.Time
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithJournalClientAuthorizer sets the client authorizer for the journal service.
func WithJournalClientAuthorizer(authorizer portssvc.ClientAuthorizerSvc) JournalServiceOption {
	return func(s *journalService) {
		s.ClientAuthorizer = authorizer
	}
}

// WithJournalClock overrides the clock used for default dates and audit fields.
func WithJournalClock(now func() time.Time) JournalServiceOption {
	return func(s *journalService) {
		s.now = now
	}
}

// NewJournalService creates a new journal service with the provided options
func NewJournalService(entryRepo portsrepo.EntryRepositoryFacade, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		entryRepo: entryRepo,
		validate:  utils.NewValidator(),
		now:       time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// newEntry builds and validates an entry. The caller has already checked the amount.
func (s *journalService) newEntry(clientID, userID string, date time.Time, desc, debit, credit string, amount decimal.Decimal) (domain.JournalEntry, error) {
	now := s.now().UTC()
	entry := domain.JournalEntry{
		EntryID:       uuid.NewString(),
		Date:          date,
		Description:   strings.TrimSpace(desc),
		DebitAccount:  strings.TrimSpace(debit),
		CreditAccount: strings.TrimSpace(credit),
		Amount:        amount,
		ClientID:      clientID,
		CreatedAt:     now,
		CreatedBy:     userID,
	}
	if err := s.validate.Struct(entry); err != nil {
		return domain.JournalEntry{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.DescribeValidationErrors(err))
	}
	return entry, nil
}

// CreateEntry records a single manual entry.
func (s *journalService) CreateEntry(ctx context.Context, clientID string, req dto.CreateEntryRequest, userID string) (*domain.JournalEntry, error) {
	if err := s.AuthorizeClient(ctx, userID, clientID); err != nil {
		return nil, err
	}

	date := s.today()
	if req.Date != "" {
		parsed, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
		}
		date = parsed
	}

	if err := accounting.ValidateEntryAmount(req.Amount); err != nil {
		return nil, err
	}

	entry, err := s.newEntry(clientID, userID, date, req.Description, req.DebitAccount, req.CreditAccount, req.Amount)
	if err != nil {
		return nil, err
	}

	if err := s.entryRepo.AppendEntries(ctx, []domain.JournalEntry{entry}); err != nil {
		s.LogError(ctx, err, "Failed to append entry", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("client_id", clientID))
	return &entry, nil
}

// ImportEntries appends every row of a CSV upload, or none of them.
func (s *journalService) ImportEntries(ctx context.Context, clientID string, r io.Reader, userID string) (*dto.ImportEntriesResponse, error) {
	if err := s.AuthorizeClient(ctx, userID, clientID); err != nil {
		return nil, err
	}

	parsed, err := importer.ReadEntries(r)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.JournalEntry, 0, len(parsed.Rows))
	for _, row := range parsed.Rows {
		entry, err := s.newEntry(clientID, userID, row.Date, row.Description, row.DebitAccount, row.CreditAccount, row.Amount)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row.Line, err)
		}
		entries = append(entries, entry)
	}

	if err := s.entryRepo.AppendEntries(ctx, entries); err != nil {
		s.LogError(ctx, err, "Failed to append imported entries", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to save imported entries: %w", err)
	}

	s.LogInfo(ctx, "Journal entries imported",
		slog.String("client_id", clientID),
		slog.Int("imported", len(entries)),
		slog.Int("skipped", parsed.Skipped))
	return &dto.ImportEntriesResponse{Imported: len(entries), Skipped: parsed.Skipped}, nil
}

// ListEntries pages through a client's entries in the order they were recorded.
func (s *journalService) ListEntries(ctx context.Context, clientID string, userID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	if err := s.AuthorizeClient(ctx, userID, clientID); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultEntryPageSize
	}
	if limit > maxEntryPageSize {
		limit = maxEntryPageSize
	}

	entries, err := s.entryRepo.ListEntriesByClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	start := 0
	if params.NextToken != "" {
		offset, entryID, err := pagination.DecodeEntryCursor(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		if offset == 0 || offset > len(entries) || entries[offset-1].EntryID != entryID {
			return nil, fmt.Errorf("%w: pagination token does not match this client's entries", apperrors.ErrValidation)
		}
		start = offset
	}

	end := min(start+limit, len(entries))
	page := entries[start:end]

	resp := &dto.ListEntriesResponse{Entries: dto.ToEntryResponses(page)}
	if end < len(entries) {
		token := pagination.EncodeEntryCursor(end, entries[end-1].EntryID)
		resp.NextToken = &token
	}
	return resp, nil
}

func (s *journalService) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
