// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"keystone/internal/domain/entity"
	domainerrors "keystone/internal/domain/errors"
	"keystone/internal/domain/repository"
	"keystone/internal/domain/service"
	"keystone/internal/usecase"

	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accounts     repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(
	accounts repository.AccountRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		accounts:     accounts,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register orchestrates self-registration. Validation fails fast before any
// storage access; the created account always carries the "user" role.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	srv.logger.Info("Starting registration", "email", input.Email)

	if input.Password != input.ConfirmPassword {
		return domainerrors.ErrPasswordMismatch.WrapMessage("registration failed")
	}
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return domainerrors.ErrMissingFields.WrapMessage("registration failed")
	}

	// Advisory duplicate check for a fast, friendly error. Two concurrent
	// registrations can both pass it; the store's unique index on email is
	// the authoritative guard and surfaces the same conflict error.
	_, err := srv.accounts.FindByEmail(ctx, input.Email)
	if err == nil {
		return domainerrors.ErrAccountAlreadyExists.WrapMessage("registration failed")
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to check existing account")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return domainerrors.ErrPasswordHashFailed.WrapMessage("registration failed")
	}

	newAccount := &entity.Account{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
		Status:       entity.StatusActive,
	}

	if err := srv.accounts.CreateUser(ctx, newAccount); err != nil {
		srv.logger.Error("Failed to create account", "error", err, "email", input.Email)

		return errors.Wrap(err, "failed to create account")
	}
	srv.logger.Debug("Account registered successfully", "accountID", newAccount.ID)

	return nil
}

// Login authenticates the credential and issues a signed session token. An
// unknown email and a wrong password share the same HTTP category but carry
// different messages, matching the public contract.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting login", "email", input.Email)

	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingFields.WrapMessage("login failed")
	}

	account, err := srv.accounts.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.logger.Warn("Login with wrong password", "email", input.Email)

		return nil, domainerrors.ErrInvalidPassword.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Sign(account.ID, account.Role)
	if err != nil {
		srv.logger.Error("Failed to sign session token", "error", err)

		return nil, domainerrors.ErrTokenSignFailed.WrapMessage("login failed")
	}

	message := "User logged in"
	if account.Role.IsAdmin() {
		message = "Admin logged in"
	}
	srv.logger.Debug("Logged in successfully", "accountID", account.ID, "role", account.Role)

	return &usecase.LoginOutput{
		Token:   token,
		Role:    account.Role,
		Message: message,
	}, nil
}
