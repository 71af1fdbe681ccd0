package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/finmatrix/internal/apperrors"
	"github.com/SscSPs/finmatrix/internal/core/domain"
	portssvc "github.com/SscSPs/finmatrix/internal/core/ports/services"
	"github.com/SscSPs/finmatrix/internal/core/services"
	"github.com/SscSPs/finmatrix/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2025, 10, 19, 15, 4, 5, 0, time.UTC)

type JournalServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEntryRepository
	mockAuth *MockClientAuthorizer
	service  portssvc.JournalSvcFacade
	ctx      context.Context
}

func (s *JournalServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockEntryRepository)
	s.mockAuth = new(MockClientAuthorizer)
	s.service = services.NewJournalService(s.mockRepo,
		services.WithJournalClientAuthorizer(s.mockAuth),
		services.WithJournalClock(func() time.Time { return fixedNow }),
	)
	s.ctx = context.Background()
	s.mockAuth.On("AuthorizeClientAccess", mock.Anything, "u1", "c1").Return(nil).Maybe()
	s.mockAuth.On("AuthorizeClientAccess", mock.Anything, "u1", "c2").Return(apperrors.ErrForbidden).Maybe()
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

func (s *JournalServiceTestSuite) TestCreateEntry_Success() {
	req := dto.CreateEntryRequest{
		Date:          "2025-10-02",
		Description:   " Raw Material Purchase ",
		DebitAccount:  "Raw Material Purchase",
		CreditAccount: "Accounts Payable",
		Amount:        decimal.RequireFromString("1200000.50"),
	}
	s.mockRepo.On("AppendEntries", s.ctx, mock.MatchedBy(func(entries []domain.JournalEntry) bool {
		return len(entries) == 1 && entries[0].ClientID == "c1" && entries[0].CreatedBy == "u1"
	})).Return(nil).Once()

	entry, err := s.service.CreateEntry(s.ctx, "c1", req, "u1")

	s.Require().NoError(err)
	s.NotEmpty(entry.EntryID)
	s.Equal(time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC), entry.Date)
	s.Equal("Raw Material Purchase", entry.Description)
	s.Equal(fixedNow, entry.CreatedAt)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *JournalServiceTestSuite) TestCreateEntry_DefaultsToToday() {
	s.mockRepo.On("AppendEntries", s.ctx, mock.Anything).Return(nil).Once()

	entry, err := s.service.CreateEntry(s.ctx, "c1", dto.CreateEntryRequest{
		DebitAccount: "Cash", CreditAccount: "Sales", Amount: decimal.NewFromInt(10),
	}, "u1")

	s.Require().NoError(err)
	s.Equal(time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC), entry.Date)
}

func (s *JournalServiceTestSuite) TestCreateEntry_Rejected() {
	tests := []struct {
		name    string
		req     dto.CreateEntryRequest
		wantErr error
	}{
		{"zero amount", dto.CreateEntryRequest{DebitAccount: "Cash", CreditAccount: "Sales", Amount: decimal.Zero}, apperrors.ErrValidation},
		{"negative amount", dto.CreateEntryRequest{DebitAccount: "Cash", CreditAccount: "Sales", Amount: decimal.NewFromInt(-5)}, apperrors.ErrValidation},
		{"sub-paisa amount", dto.CreateEntryRequest{DebitAccount: "Cash", CreditAccount: "Sales", Amount: decimal.RequireFromString("0.001")}, apperrors.ErrValidation},
		{"bad date", dto.CreateEntryRequest{Date: "02/10/2025", DebitAccount: "Cash", CreditAccount: "Sales", Amount: decimal.NewFromInt(1)}, apperrors.ErrValidation},
		{"same account both sides", dto.CreateEntryRequest{DebitAccount: "Cash", CreditAccount: " Cash", Amount: decimal.NewFromInt(1)}, apperrors.ErrValidation},
		{"blank account", dto.CreateEntryRequest{DebitAccount: "  ", CreditAccount: "Cash", Amount: decimal.NewFromInt(1)}, apperrors.ErrValidation},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.CreateEntry(s.ctx, "c1", tt.req, "u1")
			s.ErrorIs(err, tt.wantErr)
		})
	}
	s.mockRepo.AssertNotCalled(s.T(), "AppendEntries", mock.Anything, mock.Anything)
}

func (s *JournalServiceTestSuite) TestCreateEntry_Forbidden() {
	_, err := s.service.CreateEntry(s.ctx, "c2", dto.CreateEntryRequest{
		DebitAccount: "Cash", CreditAccount: "Sales", Amount: decimal.NewFromInt(1),
	}, "u1")

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockRepo.AssertNotCalled(s.T(), "AppendEntries", mock.Anything, mock.Anything)
}

func (s *JournalServiceTestSuite) TestImportEntries_AppendsAllAtOnce() {
	csv := "Date,Description,DebitAccount,CreditAccount,Amount\n" +
		"2025-10-01,Initial Capital,Bank,Share Capital,5000000\n" +
		"2025-10-05,,Accounts Receivable,Sales,2500000\n" +
		"2025-10-06,incomplete,Cash,,\n"
	s.mockRepo.On("AppendEntries", s.ctx, mock.MatchedBy(func(entries []domain.JournalEntry) bool {
		return len(entries) == 2 && entries[1].Description == "Imported Entry"
	})).Return(nil).Once()

	resp, err := s.service.ImportEntries(s.ctx, "c1", strings.NewReader(csv), "u1")

	s.Require().NoError(err)
	s.Equal(2, resp.Imported)
	s.Equal(1, resp.Skipped)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *JournalServiceTestSuite) TestImportEntries_BadRowFailsWholeUpload() {
	csv := "Date,Description,DebitAccount,CreditAccount,Amount\n" +
		"2025-10-01,ok,Bank,Share Capital,100\n" +
		"2025-10-02,self,Cash,Cash,100\n"

	_, err := s.service.ImportEntries(s.ctx, "c1", strings.NewReader(csv), "u1")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.Contains(err.Error(), "row 3")
	s.mockRepo.AssertNotCalled(s.T(), "AppendEntries", mock.Anything, mock.Anything)
}

func (s *JournalServiceTestSuite) TestListEntries_Paginates() {
	stored := make([]domain.JournalEntry, 5)
	for i := range stored {
		stored[i] = domain.JournalEntry{EntryID: string(rune('a' + i)), ClientID: "c1", Amount: decimal.NewFromInt(1)}
	}
	s.mockRepo.On("ListEntriesByClient", s.ctx, "c1").Return(stored, nil)

	first, err := s.service.ListEntries(s.ctx, "c1", "u1", dto.ListEntriesParams{Limit: 2})
	s.Require().NoError(err)
	s.Len(first.Entries, 2)
	s.Require().NotNil(first.NextToken)

	second, err := s.service.ListEntries(s.ctx, "c1", "u1", dto.ListEntriesParams{Limit: 2, NextToken: *first.NextToken})
	s.Require().NoError(err)
	s.Equal("c", second.Entries[0].EntryID)
	s.Require().NotNil(second.NextToken)

	last, err := s.service.ListEntries(s.ctx, "c1", "u1", dto.ListEntriesParams{Limit: 2, NextToken: *second.NextToken})
	s.Require().NoError(err)
	s.Len(last.Entries, 1)
	s.Equal("e", last.Entries[0].EntryID)
	s.Nil(last.NextToken)
}

func (s *JournalServiceTestSuite) TestListEntries_BadToken() {
	s.mockRepo.On("ListEntriesByClient", s.ctx, "c1").Return([]domain.JournalEntry{{EntryID: "a"}}, nil)

	_, err := s.service.ListEntries(s.ctx, "c1", "u1", dto.ListEntriesParams{NextToken: "%%%"})

	s.ErrorIs(err, apperrors.ErrValidation)
}
