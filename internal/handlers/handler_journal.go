package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ulule/limiter/v3"

	portssvc "github.com/SscSPs/finmatrix/internal/core/ports/services"
	"github.com/SscSPs/finmatrix/internal/dto"
	"github.com/SscSPs/finmatrix/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests for a client's journal entries
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
	maxImportBytes int64
}

// registerJournalRoutes registers the entry routes under /clients/:client_id
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade, importLimiter *limiter.Limiter, maxImportBytes int64) {
	h := &journalHandler{journalService: journalService, maxImportBytes: maxImportBytes}

	entries := rg.Group("/entries")
	{
		entries.GET("", h.listEntries)
		entries.POST("", h.createEntry)
		entries.POST("/import", middleware.RateLimit(importLimiter), h.importEntries)
	}
}

// createEntry godoc
// @Summary Record a journal entry
// @Description Debits one account and credits another with the same positive amount.
// @Tags entries
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Param entry body dto.CreateEntryRequest true "Journal entry"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Client not visible to the user"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id}/entries [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	userID, clientID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.journalService.CreateEntry(c.Request.Context(), clientID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Lists a client's entries in the order they were recorded.
// @Tags entries
// @Produce json
// @Param client_id path string true "Client ID"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id}/entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	userID, clientID, ok := requestScope(c)
	if !ok {
		return
	}

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.journalService.ListEntries(c.Request.Context(), clientID, userID, params)
	if err != nil {
		respondError(c, err, "Failed to list entries")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// importEntries godoc
// @Summary Import journal entries from CSV
// @Description Columns: Date,Description,DebitAccount,CreditAccount,Amount. The first line is a header.
// @Description Incomplete lines are skipped; any malformed line rejects the whole upload.
// @Tags entries
// @Accept text/csv
// @Accept multipart/form-data
// @Produce json
// @Param client_id path string true "Client ID"
// @Param file formData file false "CSV file (multipart uploads)"
// @Success 201 {object} dto.ImportEntriesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse "Upload too large"
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id}/entries/import [post]
func (h *journalHandler) importEntries(c *gin.Context) {
	userID, clientID, ok := requestScope(c)
	if !ok {
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxImportBytes)
	var src io.Reader = c.Request.Body

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				respondError(c, err, "Import upload too large")
				return
			}
			logger.Warn("CSV file missing from form", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "CSV file required in form field 'file'"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			respondError(c, err, "Failed to read upload")
			return
		}
		defer file.Close()
		src = file
	}

	resp, err := h.journalService.ImportEntries(c.Request.Context(), clientID, src, userID)
	if err != nil {
		respondError(c, err, "Failed to import entries")
		return
	}

	c.JSON(http.StatusCreated, resp)
}
