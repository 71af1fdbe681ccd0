package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/finmatrix/internal/apperrors"
	"github.com/SscSPs/finmatrix/internal/middleware"
	"github.com/SscSPs/finmatrix/internal/utils"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// respondError maps service errors to HTTP statuses. Anything unrecognised is a 500
// whose details stay in the log.
func respondError(c *gin.Context, err error, msg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &tooLarge):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Upload too large"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: strings.TrimPrefix(err.Error(), apperrors.ErrValidation.Error()+": ")})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Already exists"})
	default:
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
	}
}

// respondBindError reports a request that failed binding or binding-tag validation.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:  "Invalid request",
		Fields: utils.ProcessValidationErrors(err),
	})
}

// requestScope reads the authenticated user and the :client_id path parameter.
// On failure it writes the response and returns ok == false.
func requestScope(c *gin.Context) (userID, clientID string, ok bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok = middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", "", false
	}

	clientID = c.Param("client_id")
	if clientID == "" {
		logger.Warn("Client ID missing from path")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Client ID required in path"})
		return "", "", false
	}
	return userID, clientID, true
}
