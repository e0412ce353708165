package models

import (
	"time"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
)

// Request models

// SignupRequest creates a new account
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"` // "admin" or "owner"
}

// LoginRequest exchanges credentials for a JWT
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest starts the password-reset flow
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest completes the password-reset flow
type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdatePasswordRequest changes the password of a logged-in account
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// UpdateAccountRequest modifies account fields.
// Nil fields keep their current values.
type UpdateAccountRequest struct {
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

// Response models

// UserResponse is the wire representation of an account
type UserResponse struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	RestaurantID *int64    `json:"restaurantId,omitempty"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"createdAt"`
}

// LoginResponse carries the issued JWT
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// FromDomainUser converts a domain model to a DTO.
// The password hash never leaves the service.
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Role:         string(u.Role),
		RestaurantID: u.RestaurantID,
		Verified:     u.Verified,
		CreatedAt:    u.CreatedAt,
	}
}
