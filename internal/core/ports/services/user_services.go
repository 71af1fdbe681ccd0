package services

import (
	"context"

	"github.com/SscSPs/finmatrix/internal/core/domain"
	"github.com/SscSPs/finmatrix/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// Register creates a new user. CLIENT users are bound to a fresh client ID.
	// CA users need creatorID to be an existing CA; public sign-up passes "".
	Register(ctx context.Context, req dto.RegisterRequest, creatorID string) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// Authenticate checks email and password and returns the matching user.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// ClientAuthorizerSvc decides whether a user may work with a client's books.
type ClientAuthorizerSvc interface {
	// AuthorizeClientAccess returns nil, apperrors.ErrUnauthorized (unknown user)
	// or apperrors.ErrForbidden (client not visible to the user).
	AuthorizeClientAccess(ctx context.Context, userID, clientID string) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
	ClientAuthorizerSvc
}
