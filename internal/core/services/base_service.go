package services

import (
	"context"
	"log/slog"

	portssvc "github.com/SscSPs/finmatrix/internal/core/ports/services"
	"github.com/SscSPs/finmatrix/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	ClientAuthorizer portssvc.ClientAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeClient checks that userID may work with clientID's books.
func (s *BaseService) AuthorizeClient(ctx context.Context, userID, clientID string) error {
	if s.ClientAuthorizer != nil {
		if err := s.ClientAuthorizer.AuthorizeClientAccess(ctx, userID, clientID); err != nil {
			s.LogError(ctx, err, "User not authorized for client",
				slog.String("user_id", userID),
				slog.String("client_id", clientID))
			return err
		}
		return nil
	}
	s.LogDebug(ctx, "No client authorizer provided, access granted by default",
		slog.String("user_id", userID),
		slog.String("client_id", clientID))
	return nil
}
