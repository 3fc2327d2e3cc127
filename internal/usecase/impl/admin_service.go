package impl

import (
	"context"
	"log/slog"
	"strings"

	"keystone/internal/domain/entity"
	domainerrors "keystone/internal/domain/errors"
	"keystone/internal/domain/repository"
	"keystone/internal/domain/service"
	"keystone/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	accounts repository.AccountRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	accounts repository.AccountRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		accounts: accounts,
		hasher:   hasher,
		logger:   logger,
	}
}

// CreateAdmin validates and persists a new administrator account. The role
// is a closed enum checked here; storage trusts its callers on roles.
func (srv *adminService) CreateAdmin(ctx context.Context, input *usecase.CreateAdminInput) error {
	srv.logger.Info("Creating administrator", "email", input.Email)

	if input.ImagePath == "" {
		return domainerrors.ErrAdminImageRequired.WrapMessage("admin creation failed")
	}

	if missing := missingAdminFields(input); len(missing) > 0 {
		return domainerrors.ErrMissingFields.
			WithDetails(strings.Join(missing, ", ")).
			WrapMessage("admin creation failed")
	}

	role := entity.Role(input.Role)
	if !role.IsAdmin() {
		return domainerrors.ErrInvalidRole.
			WithDetails("role must be admin or super_admin").
			WrapMessage("admin creation failed")
	}

	// Same advisory duplicate check as registration; administrators and
	// regular users share one email namespace.
	_, err := srv.accounts.FindByEmail(ctx, input.Email)
	if err == nil {
		return domainerrors.ErrAccountAlreadyExists.WrapMessage("admin creation failed")
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to check existing account")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during admin creation", "error", err)

		return domainerrors.ErrPasswordHashFailed.WrapMessage("admin creation failed")
	}

	newAdmin := &entity.Account{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         role,
		Status:       entity.StatusActive,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PhoneNo:      input.PhoneNo,
		Address:      input.Address,
		ImagePath:    input.ImagePath,
	}

	if err := srv.accounts.CreateAdmin(ctx, newAdmin); err != nil {
		srv.logger.Error("Failed to create administrator", "error", err, "email", input.Email)

		return errors.Wrap(err, "failed to create administrator")
	}
	srv.logger.Debug("Administrator created", "accountID", newAdmin.ID, "role", role)

	return nil
}

// GetAdmin returns the full profile of an active administrator.
func (srv *adminService) GetAdmin(ctx context.Context, id uuid.UUID) (*usecase.AdminRecord, error) {
	account, err := srv.accounts.FindAdminByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAdminNotFound.WrapMessage("get admin failed")
		}

		return nil, errors.Wrap(err, "failed to find admin by id")
	}

	return usecase.NewAdminRecord(account), nil
}

// ListAdmins returns every active administrator, empty slice when none.
func (srv *adminService) ListAdmins(ctx context.Context) ([]*usecase.AdminRecord, error) {
	accounts, err := srv.accounts.FindAllAdmins(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list admins")
	}

	records := make([]*usecase.AdminRecord, 0, len(accounts))
	for _, account := range accounts {
		records = append(records, usecase.NewAdminRecord(account))
	}

	return records, nil
}

// UpdateAdmin overwrites the profile fields of an active administrator.
// The existence pre-check turns the store's silent zero-row update into a
// proper not-found. An absent image path keeps the stored image.
func (srv *adminService) UpdateAdmin(ctx context.Context, id uuid.UUID, input *usecase.UpdateAdminInput) error {
	existing, err := srv.accounts.FindAdminByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAdminNotFound.WrapMessage("admin update failed")
		}

		return errors.Wrap(err, "failed to find admin by id")
	}

	imagePath := input.ImagePath
	if imagePath == "" {
		imagePath = existing.ImagePath
	}

	fields := repository.AdminProfileUpdate{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Username:  input.Username,
		Email:     input.Email,
		PhoneNo:   input.PhoneNo,
		Address:   input.Address,
		ImagePath: imagePath,
	}

	if err := srv.accounts.UpdateAdminByID(ctx, id, fields); err != nil {
		srv.logger.Error("Failed to update administrator", "error", err, "accountID", id)

		return errors.Wrap(err, "failed to update administrator")
	}
	srv.logger.Debug("Administrator updated", "accountID", id)

	return nil
}

// DeleteAdmin soft-deletes the account. There is no existence pre-check:
// deleting a missing or already-deleted id reports success, and the store
// keeps the operation idempotent.
func (srv *adminService) DeleteAdmin(ctx context.Context, id uuid.UUID) error {
	if err := srv.accounts.SoftDeleteByID(ctx, id); err != nil {
		srv.logger.Error("Failed to delete administrator", "error", err, "accountID", id)

		return errors.Wrap(err, "failed to delete administrator")
	}
	srv.logger.Info("Administrator soft-deleted", "accountID", id)

	return nil
}

// ListUsers returns the minimal projection of active regular users.
func (srv *adminService) ListUsers(ctx context.Context) ([]repository.UserListing, error) {
	listings, err := srv.accounts.FindAllUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return listings, nil
}

// missingAdminFields reports which required creation fields are absent, in a
// stable order for error details.
func missingAdminFields(input *usecase.CreateAdminInput) []string {
	required := []struct {
		name  string
		value string
	}{
		{"first_name", input.FirstName},
		{"last_name", input.LastName},
		{"username", input.Username},
		{"email", input.Email},
		{"password", input.Password},
		{"role", input.Role},
	}

	var missing []string
	for _, field := range required {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}

	return missing
}
