// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"keystone/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Self-registration always produces a regular user; the role is never
// caller-suppliable.
// Shape constraints are checked at the transport edge via validate tags;
// presence of required fields stays a service-level concern so the error
// codes remain stable. The password cap matches bcrypt's 72-byte input limit.
type RegisterInput struct {
	Username        string `json:"username" validate:"omitempty,max=100"`
	Email           string `json:"email" validate:"omitempty,email,max=255"`
	Password        string `json:"password" validate:"omitempty,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"omitempty,max=72"`
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"omitempty,email,max=255"`
	Password string `json:"password" validate:"omitempty,max=72"`
}

// --- Output DTOs ---

// LoginOutput returns the signed session token after a successful login.
// The role claim inside the token is authoritative; Role and Message here
// are informational for the client.
type LoginOutput struct {
	Token   string      `json:"token"`
	Role    entity.Role `json:"role"`
	Message string      `json:"message"`
}

// AccountUsecase defines the interface for registration and login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) error
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
