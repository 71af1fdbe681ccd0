package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"regexp"

	portssvc "github.com/SscSPs/finmatrix/internal/core/ports/services"
	"github.com/SscSPs/finmatrix/internal/dto"
	"github.com/SscSPs/finmatrix/internal/export"
	"github.com/SscSPs/finmatrix/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	currency         string
}

// registerReportingRoutes registers the per-client report routes
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, currency string) {
	h := &reportingHandler{reportingService: reportingService, currency: currency}

	rg.GET("/ledgers", h.getLedgers)
	reports := rg.Group("/reports")
	{
		reports.GET("", h.getFinancialReport)
		reports.GET("/export", h.exportReport)
	}
}

// registerChartRoutes registers the chart of accounts route
func registerChartRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := &reportingHandler{reportingService: reportingService}
	rg.GET("/chart-of-accounts", h.getChartOfAccounts)
}

// getLedgers godoc
// @Summary General ledger
// @Description One balance per account, in the order accounts first appear, with debit and credit totals.
// @Tags reports
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} dto.LedgersResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Forbidden (User not authorized)"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /clients/{client_id}/ledgers [get]
func (h *reportingHandler) getLedgers(c *gin.Context) {
	userID, clientID, ok := requestScope(c)
	if !ok {
		return
	}

	ledgers, err := h.reportingService.Ledgers(c.Request.Context(), clientID, userID)
	if err != nil {
		respondError(c, err, "Failed to generate ledgers")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgersResponse(clientID, ledgers))
}

// getFinancialReport godoc
// @Summary Financial statements
// @Description Trading account, profit and loss, balance sheet and cost sheet, plus closed balance sheet totals.
// @Tags reports
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} dto.FinancialReportResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Forbidden (User not authorized)"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /clients/{client_id}/reports [get]
func (h *reportingHandler) getFinancialReport(c *gin.Context) {
	userID, clientID, ok := requestScope(c)
	if !ok {
		return
	}

	report, err := h.reportingService.FinancialReport(c.Request.Context(), clientID, userID)
	if err != nil {
		respondError(c, err, "Failed to generate report")
		return
	}

	summary := dto.ToBalanceSheetSummary(report)
	if !summary.Balanced {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Balance sheet does not balance",
			slog.String("client_id", clientID),
			slog.String("total_assets", summary.TotalAssets.String()),
			slog.String("total_liabilities_and_equity", summary.TotalLiabilitiesAndEquity.String()))
	}

	c.JSON(http.StatusOK, dto.ToFinancialReportResponse(clientID, h.currency, report))
}

// exportReport godoc
// @Summary Download a report
// @Description CSV downloads hold one tab; XLSX downloads hold every tab as its own sheet.
// @Description HTML renders every tab as a printable page.
// @Tags reports
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce html
// @Param client_id path string true "Client ID"
// @Param tab query string false "trading, balance, ledger or cost" default(trading)
// @Param format query string false "csv, xlsx or html" default(csv)
// @Param company query string false "Company name printed on the report" default(client ID)
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id}/reports/export [get]
func (h *reportingHandler) exportReport(c *gin.Context) {
	userID, clientID, ok := requestScope(c)
	if !ok {
		return
	}

	tab, err := export.ParseTab(c.Query("tab"))
	if err != nil {
		respondError(c, err, "Invalid report tab")
		return
	}
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" && format != "html" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "format must be csv, xlsx or html"})
		return
	}
	company := c.DefaultQuery("company", clientID)

	report, err := h.reportingService.FinancialReport(c.Request.Context(), clientID, userID)
	if err != nil {
		respondError(c, err, "Failed to generate report")
		return
	}

	base := unsafeFilename.ReplaceAllString(company, "_")
	switch format {
	case "html":
		c.Header("Content-Type", "text/html; charset=utf-8")
		if err := export.WriteHTML(c.Writer, report, company, h.currency); err != nil {
			respondError(c, err, "Failed to write report")
		}
		return
	case "xlsx":
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_report.xlsx"`, base))
		c.Header("Content-Type", xlsxContentType)
		if err := export.WriteXLSX(c.Writer, report, company); err != nil {
			respondError(c, err, "Failed to write report")
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_%s_report.csv"`, base, tab))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	if err := export.WriteCSV(c.Writer, report, tab, company); err != nil {
		respondError(c, err, "Failed to write report")
	}
}

// getChartOfAccounts godoc
// @Summary Chart of accounts
// @Description The account heads used to classify ledgers. Unlisted names are reported as indirect expenses.
// @Tags reports
// @Produce json
// @Success 200 {array} domain.AccountHead
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /chart-of-accounts [get]
func (h *reportingHandler) getChartOfAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportingService.ChartOfAccounts(c.Request.Context()))
}
