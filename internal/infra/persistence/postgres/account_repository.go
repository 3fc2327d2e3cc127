// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"keystone/internal/domain/entity"
	domainerrors "keystone/internal/domain/errors"
	"keystone/internal/domain/repository"
	"keystone/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRoles is the predicate shared by every administrator-scoped query.
var adminRoles = []string{entity.RoleAdmin.String(), entity.RoleSuperAdmin.String()}

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByEmail retrieves the account matching the email regardless of role or
// deletion state. The missing deleted filter is deliberate: a soft-deleted
// account keeps its email claim and can still authenticate.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by email")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toAccountDomain(&accountM), nil
}

// CreateUser persists a new regular account. The role is fixed here rather
// than taken from the entity so no caller can sneak an elevated role in.
func (repo *accountRepository) CreateUser(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)
	accountM.Role = entity.RoleUser.String()
	accountM.IsDeleted = false

	return repo.create(ctx, account, accountM)
}

// CreateAdmin persists a new administrator account with the caller-validated role.
func (repo *accountRepository) CreateAdmin(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)
	accountM.IsDeleted = false

	return repo.create(ctx, account, accountM)
}

func (repo *accountRepository) create(ctx context.Context, account *entity.Account, accountM *model.AccountModel) error {
	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// The unique index on email is the authoritative duplicate guard;
		// the service-level pre-check only narrows the race window.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Propagate the generated ID and timestamps back onto the entity.
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// FindAdminByID retrieves an account only when it holds an administrator
// role and has not been soft-deleted.
func (repo *accountRepository) FindAdminByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Where("id = ? AND role IN ? AND is_deleted = ?", id, adminRoles, false).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find admin by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindAllAdmins retrieves every active administrator account.
func (repo *accountRepository) FindAllAdmins(ctx context.Context) ([]*entity.Account, error) {
	var accountModels []model.AccountModel

	err := repo.db.WithContext(ctx).
		Where("role IN ? AND is_deleted = ?", adminRoles, false).
		Order("created_at").
		Find(&accountModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list admins")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for i := range accountModels {
		accounts = append(accounts, toAccountDomain(&accountModels[i]))
	}

	return accounts, nil
}

// SoftDeleteByID marks the account as deleted. A zero-row update is not an
// error: deletion is idempotent from the store's perspective.
func (repo *accountRepository) SoftDeleteByID(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to soft delete account")
	}

	return nil
}

// UpdateAdminByID overwrites the profile fields for an account matching the
// administrator + active predicate. Role and password hash never appear in
// the update payload. A zero-row update is silent; callers pre-check.
func (repo *accountRepository) UpdateAdminByID(ctx context.Context, id uuid.UUID, fields repository.AdminProfileUpdate) error {
	updates := map[string]any{
		"first_name": fields.FirstName,
		"last_name":  fields.LastName,
		"username":   fields.Username,
		"email":      fields.Email,
		"phone_no":   fields.PhoneNo,
		"address":    fields.Address,
		"image_path": fields.ImagePath,
	}

	err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ? AND role IN ? AND is_deleted = ?", id, adminRoles, false).
		Updates(updates).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update admin")
	}

	return nil
}

// FindAllUsers retrieves active regular users projected to the minimal
// listing shape. The projection happens in SELECT, so the password hash and
// administrator fields never leave the database.
func (repo *accountRepository) FindAllUsers(ctx context.Context) ([]repository.UserListing, error) {
	var listings []repository.UserListing

	err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Select("id", "email", "username").
		Where("role = ? AND is_deleted = ?", entity.RoleUser.String(), false).
		Order("created_at").
		Find(&listings).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	return listings, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	status := entity.StatusActive
	if data.IsDeleted {
		status = entity.StatusDeleted
	}

	return &entity.Account{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		Status:       status,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		PhoneNo:      data.PhoneNo,
		Address:      data.Address,
		ImagePath:    data.ImagePath,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
		IsDeleted:    data.Status == entity.StatusDeleted,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		PhoneNo:      data.PhoneNo,
		Address:      data.Address,
		ImagePath:    data.ImagePath,
	}
}
