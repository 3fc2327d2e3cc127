package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"keystone/internal/domain/entity"
	domainerrors "keystone/internal/domain/errors"
	"keystone/internal/domain/repository"
	"keystone/internal/domain/service"

	"github.com/google/uuid"
)

// domainConflict mirrors the repository's unique-index rejection.
func domainConflict() error {
	return domainerrors.ErrAccountAlreadyExists.WrapMessage("email already exists")
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAccountRepo is an in-memory AccountRepository mirroring the store
// contract: email lookups ignore the deleted flag, admin-scoped reads do
// not, the unique email guard rejects duplicates, soft delete is idempotent.
type fakeAccountRepo struct {
	accounts map[uuid.UUID]*entity.Account
	failWith error // when set, every operation returns this error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*entity.Account)}
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, account := range f.accounts {
		if account.Email == email {
			copied := *account

			return &copied, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (f *fakeAccountRepo) CreateUser(_ context.Context, account *entity.Account) error {
	account.Role = entity.RoleUser

	return f.insert(account)
}

func (f *fakeAccountRepo) CreateAdmin(_ context.Context, account *entity.Account) error {
	return f.insert(account)
}

func (f *fakeAccountRepo) insert(account *entity.Account) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, existing := range f.accounts {
		if existing.Email == account.Email {
			return domainConflict()
		}
	}
	account.ID = uuid.New()
	account.Status = entity.StatusActive
	copied := *account
	f.accounts[account.ID] = &copied

	return nil
}

func (f *fakeAccountRepo) FindAdminByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	account, ok := f.accounts[id]
	if !ok || !account.Role.IsAdmin() || account.IsDeleted() {
		return nil, repository.ErrAccountNotFound
	}
	copied := *account

	return &copied, nil
}

func (f *fakeAccountRepo) FindAllAdmins(_ context.Context) ([]*entity.Account, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var admins []*entity.Account
	for _, account := range f.accounts {
		if account.Role.IsAdmin() && !account.IsDeleted() {
			copied := *account
			admins = append(admins, &copied)
		}
	}

	return admins, nil
}

func (f *fakeAccountRepo) SoftDeleteByID(_ context.Context, id uuid.UUID) error {
	if f.failWith != nil {
		return f.failWith
	}
	if account, ok := f.accounts[id]; ok {
		account.Status = entity.StatusDeleted
	}

	return nil
}

func (f *fakeAccountRepo) UpdateAdminByID(_ context.Context, id uuid.UUID, fields repository.AdminProfileUpdate) error {
	if f.failWith != nil {
		return f.failWith
	}
	account, ok := f.accounts[id]
	if !ok || !account.Role.IsAdmin() || account.IsDeleted() {
		// Predicate miss affects zero rows and stays silent.
		return nil
	}
	account.FirstName = fields.FirstName
	account.LastName = fields.LastName
	account.Username = fields.Username
	account.Email = fields.Email
	account.PhoneNo = fields.PhoneNo
	account.Address = fields.Address
	account.ImagePath = fields.ImagePath

	return nil
}

func (f *fakeAccountRepo) FindAllUsers(_ context.Context) ([]repository.UserListing, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var listings []repository.UserListing
	for _, account := range f.accounts {
		if account.Role == entity.RoleUser && !account.IsDeleted() {
			listings = append(listings, repository.UserListing{
				ID:       account.ID,
				Email:    account.Email,
				Username: account.Username,
			})
		}
	}

	return listings, nil
}

// stubHasher avoids bcrypt cost in business-logic tests.
type stubHasher struct {
	failWith error
}

func (s *stubHasher) Hash(password string) (string, error) {
	if s.failWith != nil {
		return "", s.failWith
	}

	return "hashed:" + password, nil
}

func (s *stubHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// stubTokenService records the last signed identity and role.
type stubTokenService struct {
	lastAccountID uuid.UUID
	lastRole      entity.Role
	failWith      error
}

func (s *stubTokenService) Sign(accountID uuid.UUID, role entity.Role) (string, error) {
	if s.failWith != nil {
		return "", s.failWith
	}
	s.lastAccountID = accountID
	s.lastRole = role

	return fmt.Sprintf("token:%s:%s", accountID, role), nil
}

func (s *stubTokenService) Validate(string) (*service.SessionClaims, error) {
	return nil, fmt.Errorf("not implemented in stub")
}
