package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/finmatrix/internal/apperrors"
	"github.com/SscSPs/finmatrix/internal/core/domain"
	portsrepo "github.com/SscSPs/finmatrix/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finmatrix/internal/core/ports/services"
	"github.com/SscSPs/finmatrix/internal/dto"
	"github.com/SscSPs/finmatrix/internal/utils"
)

// userService manages the user directory and decides client visibility.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// Ensure userService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// Register creates a user. creatorID is empty for public sign-up, which may only
// create CLIENT users; a CA account can only be created by an existing CA.
func (s *userService) Register(ctx context.Context, req dto.RegisterRequest, creatorID string) (*domain.User, error) {
	if req.Role != domain.RoleCA && req.Role != domain.RoleClient {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}
	if len(req.Password) > utils.MaxPasswordBytes {
		return nil, fmt.Errorf("%w: password must be at most %d bytes", apperrors.ErrValidation, utils.MaxPasswordBytes)
	}
	if req.Role == domain.RoleCA {
		if err := s.requireCA(ctx, creatorID); err != nil {
			return nil, err
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         req.Role,
	}
	if user.Role == domain.RoleClient {
		// Each client organisation gets its own set of books
		user.ClientID = "c_" + uuid.NewString()
	}
	createdBy := creatorID
	if createdBy == "" {
		createdBy = user.UserID
	}
	user.CreatedAt, user.CreatedBy = now, createdBy
	user.LastUpdatedAt, user.LastUpdatedBy = now, createdBy

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("email", user.Email))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.LogInfo(ctx, "User registered",
		slog.String("user_id", user.UserID),
		slog.String("role", string(user.Role)),
		slog.String("created_by", createdBy))
	return &user, nil
}

// requireCA checks that userID belongs to an existing CA.
func (s *userService) requireCA(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: only a CA can create a CA account", apperrors.ErrForbidden)
	}
	creator, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: unknown user %s", apperrors.ErrUnauthorized, userID)
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if creator.Role != domain.RoleCA {
		s.LogInfo(ctx, "Non-CA user tried to create a CA account", slog.String("user_id", userID))
		return fmt.Errorf("%w: only a CA can create a CA account", apperrors.ErrForbidden)
	}
	return nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Password mismatch on login", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

// AuthorizeClientAccess lets a CA into every client and a CLIENT user into its own only.
func (s *userService) AuthorizeClientAccess(ctx context.Context, userID, clientID string) error {
	if clientID == "" {
		return fmt.Errorf("%w: client ID is required", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: unknown user %s", apperrors.ErrUnauthorized, userID)
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.CanAccessClient(clientID) {
		return fmt.Errorf("%w: user %s may not access client %s", apperrors.ErrForbidden, userID, clientID)
	}
	return nil
}
