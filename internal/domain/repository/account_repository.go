// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"keystone/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when no account
// matches a lookup.
var ErrAccountNotFound = errors.New("account not found")

// AdminProfileUpdate carries the profile fields an administrator update may
// overwrite. Role and password are deliberately absent; neither is mutable
// through this path.
type AdminProfileUpdate struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	PhoneNo   string
	Address   string
	ImagePath string
}

// UserListing is the minimal projection of a regular user account. It never
// carries the password hash or any administrator-only field.
type UserListing struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
}

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete
// implementation.
type AccountRepository interface {
	// FindByEmail retrieves the account matching the email regardless of role.
	// It does not filter soft-deleted accounts: a deleted account's email
	// still blocks re-registration and still resolves at login.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// CreateUser persists a new regular account with role "user" and active
	// status. A unique-constraint rejection on email surfaces as the domain
	// conflict error; the constraint is the authoritative duplicate guard.
	CreateUser(ctx context.Context, account *entity.Account) error

	// CreateAdmin persists a new administrator account. The role has already
	// been validated by the caller.
	CreateAdmin(ctx context.Context, account *entity.Account) error

	// FindAdminByID retrieves an account only if it holds an administrator
	// role and has not been soft-deleted; otherwise ErrAccountNotFound.
	FindAdminByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindAllAdmins retrieves every active administrator account.
	FindAllAdmins(ctx context.Context) ([]*entity.Account, error)

	// SoftDeleteByID marks the account as deleted. Idempotent: re-deleting a
	// deleted or nonexistent id is a no-op from the store's perspective.
	SoftDeleteByID(ctx context.Context, id uuid.UUID) error

	// UpdateAdminByID overwrites the supplied profile fields for an account
	// matching the administrator + active predicate. Silently affects zero
	// rows when the predicate fails; callers pre-check existence to surface
	// a not-found error.
	UpdateAdminByID(ctx context.Context, id uuid.UUID, fields AdminProfileUpdate) error

	// FindAllUsers retrieves active regular users projected to UserListing.
	FindAllUsers(ctx context.Context) ([]UserListing, error)
}
