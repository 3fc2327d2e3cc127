package usecase

import (
	"context"
	"time"

	"keystone/internal/domain/entity"
	"keystone/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateAdminInput defines the data required to create an administrator.
// ImagePath is the storage path produced by the external upload collaborator.
type CreateAdminInput struct {
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	Username  string `json:"username" validate:"omitempty,max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=255"`
	Password  string `json:"password" validate:"omitempty,max=72"`
	PhoneNo   string `json:"phone_no" validate:"omitempty,max=30"`
	Address   string `json:"address"`
	Role      string `json:"role"`
	ImagePath string `json:"image_path" validate:"omitempty,max=512"`
}

// UpdateAdminInput defines the profile fields an administrator update may
// overwrite. Role and password are not updatable through this path. An empty
// ImagePath leaves the stored image untouched.
type UpdateAdminInput struct {
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	Username  string `json:"username" validate:"omitempty,max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=255"`
	PhoneNo   string `json:"phone_no" validate:"omitempty,max=30"`
	Address   string `json:"address"`
	ImagePath string `json:"image_path" validate:"omitempty,max=512"`
}

// AdminRecord is the read shape of an administrator account. It carries the
// full profile but never the password hash.
type AdminRecord struct {
	ID        uuid.UUID   `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	PhoneNo   string      `json:"phone_no"`
	Address   string      `json:"address"`
	ImagePath string      `json:"image_path"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// NewAdminRecord projects an account entity onto the read shape.
func NewAdminRecord(account *entity.Account) *AdminRecord {
	return &AdminRecord{
		ID:        account.ID,
		Username:  account.Username,
		Email:     account.Email,
		Role:      account.Role,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		PhoneNo:   account.PhoneNo,
		Address:   account.Address,
		ImagePath: account.ImagePath,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// AdminUsecase defines the administrator account lifecycle. All operations
// assume the delivery layer has already gated access to administrators.
type AdminUsecase interface {
	CreateAdmin(ctx context.Context, input *CreateAdminInput) error
	GetAdmin(ctx context.Context, id uuid.UUID) (*AdminRecord, error)
	ListAdmins(ctx context.Context) ([]*AdminRecord, error)
	UpdateAdmin(ctx context.Context, id uuid.UUID, input *UpdateAdminInput) error
	DeleteAdmin(ctx context.Context, id uuid.UUID) error
	ListUsers(ctx context.Context) ([]repository.UserListing, error)
}
