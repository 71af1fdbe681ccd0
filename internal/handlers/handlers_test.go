package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/finmatrix/internal/core/domain"
	"github.com/SscSPs/finmatrix/internal/core/services"
	"github.com/SscSPs/finmatrix/internal/dto"
	"github.com/SscSPs/finmatrix/internal/handlers"
	"github.com/SscSPs/finmatrix/internal/middleware"
	"github.com/SscSPs/finmatrix/internal/platform/config"
	"github.com/SscSPs/finmatrix/internal/repositories/memory"
	"github.com/SscSPs/finmatrix/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

const (
	testSecret   = "test-jwt-secret"
	caUserID     = "u_ca"
	clientUserID = "u_c1"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:              "0",
		IsProduction:      true,
		JWTSecret:         testSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "finmatrix",
		LoginRateLimit:    "100-M",
		ImportRateLimit:   "100-M",
		MaxImportBytes:    1 << 20,
		ReportCurrency:    "INR",
	}
}

type HandlersTestSuite struct {
	suite.Suite
	router *gin.Engine
	cfg    *config.Config
}

func (s *HandlersTestSuite) SetupTest() {
	s.cfg = testConfig()
	s.router = s.newRouter(s.cfg)
}

func (s *HandlersTestSuite) newRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)

	repos := memory.NewRepositoryProvider()
	s.Require().NoError(memory.SeedDemoData(context.Background(), repos))

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.Require().NoError(handlers.RegisterRoutes(context.Background(), r, cfg, services.NewServiceContainer(repos)))
	return r
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) token(userID string) string {
	token, err := utils.GenerateJWT(userID, testSecret, time.Hour, "finmatrix")
	s.Require().NoError(err)
	return token
}

func (s *HandlersTestSuite) do(method, path, userID, contentType string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+s.token(userID))
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlersTestSuite) doJSON(method, path, userID string, payload any) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		s.Require().NoError(err)
		body = bytes.NewReader(raw)
	}
	return s.do(method, path, userID, "application/json", body)
}

func (s *HandlersTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (s *HandlersTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", "", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *HandlersTestSuite) TestLogin() {
	w := s.doJSON(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "admin@techsolutions.com", Password: memory.DemoPassword})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp dto.LoginResponse
	s.decode(w, &resp)
	s.NotEmpty(resp.Token)
	s.Equal(memory.DemoClientID, resp.User.ClientID)

	claims, err := utils.ParseAndValidateJWT(resp.Token, testSecret)
	s.Require().NoError(err)
	s.Equal(clientUserID, claims.Subject)

	w = s.doJSON(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "admin@techsolutions.com", Password: "nope"})
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.doJSON(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "not-an-email"})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestRegister() {
	req := dto.RegisterRequest{Name: "Acme Admin", Email: "owner@acme.com", Password: "secret", Role: domain.RoleClient}

	w := s.doJSON(http.MethodPost, "/api/v1/auth/register", "", req)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var user dto.UserResponse
	s.decode(w, &user)
	s.NotEmpty(user.ClientID)

	w = s.doJSON(http.MethodPost, "/api/v1/auth/register", "", req)
	s.Equal(http.StatusConflict, w.Code)

	req.Email, req.Role = "x@acme.com", "ADMIN"
	w = s.doJSON(http.MethodPost, "/api/v1/auth/register", "", req)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestRegister_CAIsNotSelfService() {
	req := dto.RegisterRequest{Name: "Mallory", Email: "mallory@x.com", Password: "secret", Role: domain.RoleCA}

	w := s.doJSON(http.MethodPost, "/api/v1/auth/register", "", req)
	s.Equal(http.StatusForbidden, w.Code, w.Body.String())

	w = s.doJSON(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: req.Email, Password: req.Password})
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlersTestSuite) TestRegister_PasswordOverByteLimit() {
	req := dto.RegisterRequest{Name: "Acme", Email: "owner@acme.com", Password: strings.Repeat("é", 60), Role: domain.RoleClient}

	w := s.doJSON(http.MethodPost, "/api/v1/auth/register", "", req)
	s.Equal(http.StatusBadRequest, w.Code, w.Body.String())
}

func (s *HandlersTestSuite) TestCreateUser() {
	req := dto.RegisterRequest{Name: "Priya Nair (ACA)", Email: "priya@finmatrix.com", Password: "secret", Role: domain.RoleCA}

	w := s.doJSON(http.MethodPost, "/api/v1/users", clientUserID, req)
	s.Equal(http.StatusForbidden, w.Code, w.Body.String())

	w = s.doJSON(http.MethodPost, "/api/v1/users", "", req)
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.doJSON(http.MethodPost, "/api/v1/users", caUserID, req)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var user dto.UserResponse
	s.decode(w, &user)
	s.Equal(domain.RoleCA, user.Role)
	s.Empty(user.ClientID)

	// the new CA can read any client's books
	w = s.do(http.MethodGet, "/api/v1/clients/c1/ledgers", user.UserID, "", nil)
	s.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (s *HandlersTestSuite) TestMe() {
	w := s.do(http.MethodGet, "/api/v1/users/me", caUserID, "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var user dto.UserResponse
	s.decode(w, &user)
	s.Equal(domain.RoleCA, user.Role)

	w = s.do(http.MethodGet, "/api/v1/users/me", "", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlersTestSuite) TestChartOfAccounts() {
	w := s.do(http.MethodGet, "/api/v1/chart-of-accounts", clientUserID, "", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var heads []domain.AccountHead
	s.decode(w, &heads)
	s.Len(heads, 16)
}

func (s *HandlersTestSuite) TestLedgers() {
	w := s.do(http.MethodGet, "/api/v1/clients/c1/ledgers", clientUserID, "", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp dto.LedgersResponse
	s.decode(w, &resp)
	s.Len(resp.Rows, 11)
	s.Equal("Bank", resp.Rows[0].AccountName)
	s.True(resp.Totals.Debit.Equal(decimal.NewFromInt(9975000)), resp.Totals.Debit.String())
	s.True(resp.Totals.Credit.Equal(resp.Totals.Debit))
}

func (s *HandlersTestSuite) TestLedgers_FlagsUnlistedAccount() {
	req := map[string]any{"debitAccount": "Courier Charges", "creditAccount": "Bank", "amount": "1500"}
	w := s.doJSON(http.MethodPost, "/api/v1/clients/c1/entries", clientUserID, req)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/v1/clients/c1/ledgers", clientUserID, "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var resp dto.LedgersResponse
	s.decode(w, &resp)

	unlisted := map[string]bool{}
	for _, row := range resp.Rows {
		unlisted[row.AccountName] = row.Unlisted
	}
	s.True(unlisted["Courier Charges"])
	s.False(unlisted["Bank"])
}

func (s *HandlersTestSuite) TestClientVisibility() {
	tests := []struct {
		name   string
		userID string
		path   string
		want   int
	}{
		{"client reads own books", clientUserID, "/api/v1/clients/c1/reports", http.StatusOK},
		{"client denied other books", clientUserID, "/api/v1/clients/c2/reports", http.StatusForbidden},
		{"CA reads any client", caUserID, "/api/v1/clients/c2/ledgers", http.StatusOK},
		{"unknown user", "u_ghost", "/api/v1/clients/c1/ledgers", http.StatusUnauthorized},
		{"no token", "", "/api/v1/clients/c1/ledgers", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.do(http.MethodGet, tt.path, tt.userID, "", nil)
			s.Equal(tt.want, w.Code, w.Body.String())
		})
	}
}

func (s *HandlersTestSuite) TestFinancialReport() {
	w := s.do(http.MethodGet, "/api/v1/clients/c1/reports", caUserID, "", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp dto.FinancialReportResponse
	s.decode(w, &resp)
	s.Equal("INR", resp.Currency)
	s.True(resp.Report.Trading.GrossProfit.Equal(decimal.NewFromInt(975000)))
	s.True(resp.Report.PnL.NetProfit.Equal(decimal.NewFromInt(825000)))
	s.True(resp.Report.CostSheet.CostOfSales.Equal(decimal.NewFromInt(1675000)))
	s.True(resp.BalanceSheetSummary.Balanced)
	s.True(resp.BalanceSheetSummary.TotalLiabilitiesAndEquity.Equal(decimal.NewFromInt(7050000)))
}

func (s *HandlersTestSuite) TestCreateEntry() {
	req := map[string]any{
		"date":          "2025-10-25",
		"description":   "Bank loan drawn",
		"debitAccount":  "Bank",
		"creditAccount": "Bank Loan",
		"amount":        "200000.00",
	}
	w := s.doJSON(http.MethodPost, "/api/v1/clients/c1/entries", clientUserID, req)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var entry dto.EntryResponse
	s.decode(w, &entry)
	s.Equal("2025-10-25", entry.Date)
	s.Equal("c1", entry.ClientID)

	w = s.do(http.MethodGet, "/api/v1/clients/c1/reports", clientUserID, "", nil)
	var resp dto.FinancialReportResponse
	s.decode(w, &resp)
	s.True(resp.Report.BalanceSheet.TotalAssets.Equal(decimal.NewFromInt(7250000)))
	s.True(resp.BalanceSheetSummary.Balanced)
}

func (s *HandlersTestSuite) TestCreateEntry_Invalid() {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"zero amount", map[string]any{"debitAccount": "Cash", "creditAccount": "Sales", "amount": "0"}},
		{"negative amount", map[string]any{"debitAccount": "Cash", "creditAccount": "Sales", "amount": "-10"}},
		{"three decimals", map[string]any{"debitAccount": "Cash", "creditAccount": "Sales", "amount": "1.234"}},
		{"same account", map[string]any{"debitAccount": "Cash", "creditAccount": "Cash", "amount": "10"}},
		{"missing debit", map[string]any{"creditAccount": "Cash", "amount": "10"}},
		{"bad date", map[string]any{"date": "25/10/2025", "debitAccount": "Cash", "creditAccount": "Sales", "amount": "10"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.doJSON(http.MethodPost, "/api/v1/clients/c1/entries", clientUserID, tt.body)
			s.Equal(http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func (s *HandlersTestSuite) TestListEntries_Paginates() {
	w := s.do(http.MethodGet, "/api/v1/clients/c1/entries?limit=5", clientUserID, "", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var first dto.ListEntriesResponse
	s.decode(w, &first)
	s.Len(first.Entries, 5)
	s.Require().NotNil(first.NextToken)

	w = s.do(http.MethodGet, "/api/v1/clients/c1/entries?limit=5&nextToken="+*first.NextToken, clientUserID, "", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var second dto.ListEntriesResponse
	s.decode(w, &second)
	s.Len(second.Entries, 3)
	s.Nil(second.NextToken)
	s.Equal("Machine Purchase", second.Entries[2].Description)
}

func (s *HandlersTestSuite) TestImportEntries_RawCSV() {
	csv := "Date,Description,DebitAccount,CreditAccount,Amount\n" +
		"2025-10-26,Service invoice,Accounts Receivable,Service Income,40000\n" +
		"2025-10-27,,Salaries (Admin),Bank,30000\n" +
		"2025-10-28,half a row,Cash\n"

	w := s.do(http.MethodPost, "/api/v1/clients/c1/entries/import", clientUserID, "text/csv", strings.NewReader(csv))
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp dto.ImportEntriesResponse
	s.decode(w, &resp)
	s.Equal(2, resp.Imported)
	s.Equal(1, resp.Skipped)

	w = s.do(http.MethodGet, "/api/v1/clients/c1/entries?limit=50", clientUserID, "", nil)
	var list dto.ListEntriesResponse
	s.decode(w, &list)
	s.Len(list.Entries, 10)
	s.Equal("Imported Entry", list.Entries[9].Description)
}

func (s *HandlersTestSuite) TestImportEntries_Multipart() {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "entries.csv")
	s.Require().NoError(err)
	_, err = part.Write([]byte("Date,Description,DebitAccount,CreditAccount,Amount\n2025-10-26,x,Cash,Sales,10\n"))
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	w := s.do(http.MethodPost, "/api/v1/clients/c1/entries/import", clientUserID, mw.FormDataContentType(), &body)
	s.Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (s *HandlersTestSuite) TestImportEntries_Rejected() {
	bad := "Date,Description,DebitAccount,CreditAccount,Amount\n" +
		"2025-10-26,ok,Cash,Sales,10\n" +
		"2025-10-27,oops,Cash,Sales,-10\n"

	w := s.do(http.MethodPost, "/api/v1/clients/c1/entries/import", clientUserID, "text/csv", strings.NewReader(bad))
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "row 3")

	// nothing from the rejected upload was kept
	w = s.do(http.MethodGet, "/api/v1/clients/c1/entries", clientUserID, "", nil)
	var list dto.ListEntriesResponse
	s.decode(w, &list)
	s.Len(list.Entries, 8)

	w = s.do(http.MethodPost, "/api/v1/clients/c1/entries/import", clientUserID, "text/csv", strings.NewReader("Date,Description\n"))
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/v1/clients/c2/entries/import", clientUserID, "text/csv", strings.NewReader(bad))
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *HandlersTestSuite) TestImportEntries_TooLarge() {
	cfg := testConfig()
	cfg.MaxImportBytes = 64
	s.router = s.newRouter(cfg)

	csv := "Date,Description,DebitAccount,CreditAccount,Amount\n" + strings.Repeat("2025-10-26,x,Cash,Sales,10\n", 20)
	w := s.do(http.MethodPost, "/api/v1/clients/c1/entries/import", clientUserID, "text/csv", strings.NewReader(csv))

	s.Equal(http.StatusRequestEntityTooLarge, w.Code, w.Body.String())
}

func (s *HandlersTestSuite) TestExport_CSV() {
	w := s.do(http.MethodGet, "/api/v1/clients/c1/reports/export?tab=balance&company=Tech%20Solutions", clientUserID, "", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	s.Equal("text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	s.Contains(w.Header().Get("Content-Disposition"), "Tech_Solutions_balance_report.csv")
	s.True(strings.HasPrefix(w.Body.String(), "Balance Sheet,Tech Solutions\n"))
	s.Contains(w.Body.String(), "Asset,Bank,3750000\n")
}

func (s *HandlersTestSuite) TestExport_XLSX() {
	w := s.do(http.MethodGet, "/api/v1/clients/c1/reports/export?format=xlsx", clientUserID, "", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Contains(w.Header().Get("Content-Disposition"), "c1_report.xlsx")

	f, err := excelize.OpenReader(w.Body)
	s.Require().NoError(err)
	defer f.Close()
	s.Len(f.GetSheetList(), 4)
}

func (s *HandlersTestSuite) TestExport_BadParams() {
	w := s.do(http.MethodGet, "/api/v1/clients/c1/reports/export?tab=cashflow", clientUserID, "", nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/v1/clients/c1/reports/export?format=pdf", clientUserID, "", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestExport_HTML() {
	w := s.do(http.MethodGet, "/api/v1/clients/c1/reports/export?format=html&company=Tech%20Solutions", clientUserID, "", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	s.Equal("text/html; charset=utf-8", w.Header().Get("Content-Type"))
	s.Contains(w.Body.String(), "<title>Tech Solutions</title>")
	s.Contains(w.Body.String(), "<h2>Balance Sheet</h2>")
}
