package dto

import (
	"github.com/SscSPs/finmatrix/internal/core/domain"
)

// RegisterRequest defines the data needed to create a user.
type RegisterRequest struct {
	Name     string          `json:"name" binding:"required,max=100" example:"Tech Solutions Admin"`
	Email    string          `json:"email" binding:"required,email" example:"admin@techsolutions.com"`
	Password string          `json:"password" binding:"required,min=4,max=72"`
	Role     domain.UserRole `json:"role" binding:"required,oneof=CA CLIENT" example:"CLIENT"`
}

// LoginRequest defines the credentials for a login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse defines the public view of a user.
type UserResponse struct {
	UserID   string          `json:"userID"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Role     domain.UserRole `json:"role"`
	ClientID string          `json:"clientID,omitempty"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.UserID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		ClientID: user.ClientID,
	}
}
