package impl

import (
	"context"
	"testing"

	"keystone/internal/domain/entity"
	domainerrors "keystone/internal/domain/errors"
	"keystone/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service usecase.AdminUsecase
	repo    *fakeAccountRepo
	hasher  *stubHasher
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	t.Helper()

	repo := newFakeAccountRepo()
	hasher := &stubHasher{}

	service := NewAdminService(repo, hasher, newDiscardLogger())

	return adminServiceFixtures{
		service: service,
		repo:    repo,
		hasher:  hasher,
	}
}

func validCreateAdminInput() *usecase.CreateAdminInput {
	return &usecase.CreateAdminInput{
		FirstName: "Ann",
		LastName:  "Smith",
		Username:  "ann",
		Email:     "ann@x.com",
		Password:  "pw1",
		PhoneNo:   "555-0100",
		Address:   "1 Main St",
		Role:      "admin",
		ImagePath: "uploads/ann.png",
	}
}

func (f adminServiceFixtures) mustCreateAdmin(t *testing.T, input *usecase.CreateAdminInput) *usecase.AdminRecord {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, f.service.CreateAdmin(ctx, input))

	admins, err := f.service.ListAdmins(ctx)
	require.NoError(t, err)
	for _, record := range admins {
		if record.Email == input.Email {
			return record
		}
	}
	t.Fatalf("created admin %s not found in listing", input.Email)

	return nil
}

func TestAdminService_CreateAdmin_Success(t *testing.T) {
	fixtures := createTestAdminService(t)

	record := fixtures.mustCreateAdmin(t, validCreateAdminInput())
	assert.Equal(t, entity.RoleAdmin, record.Role)
	assert.Equal(t, "uploads/ann.png", record.ImagePath)

	stored, err := fixtures.repo.FindByEmail(context.Background(), "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, "hashed:pw1", stored.PasswordHash)
}

func TestAdminService_CreateAdmin_ImageRequired(t *testing.T) {
	fixtures := createTestAdminService(t)

	input := validCreateAdminInput()
	input.ImagePath = ""

	err := fixtures.service.CreateAdmin(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, "ADMIN_IMAGE_REQUIRED", appErrorCode(t, err))
}

func TestAdminService_CreateAdmin_MissingFieldsListed(t *testing.T) {
	fixtures := createTestAdminService(t)

	input := validCreateAdminInput()
	input.FirstName = ""
	input.Password = ""
	input.Role = ""

	err := fixtures.service.CreateAdmin(context.Background(), input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "MISSING_FIELDS", appErr.ErrorCode())
	assert.Equal(t, "first_name, password, role", appErr.Details())
}

func TestAdminService_CreateAdmin_InvalidRole(t *testing.T) {
	fixtures := createTestAdminService(t)

	for _, role := range []string{"user", "root", "superadmin", "SUPER_ADMIN"} {
		input := validCreateAdminInput()
		input.Role = role

		err := fixtures.service.CreateAdmin(context.Background(), input)
		require.Error(t, err, "role %q must be rejected", role)
		assert.Equal(t, "INVALID_ROLE", appErrorCode(t, err))
	}
}

func TestAdminService_CreateAdmin_SuperAdminRole(t *testing.T) {
	fixtures := createTestAdminService(t)

	input := validCreateAdminInput()
	input.Role = "super_admin"

	record := fixtures.mustCreateAdmin(t, input)
	assert.Equal(t, entity.RoleSuperAdmin, record.Role)
}

func TestAdminService_CreateAdmin_EmailSharedWithUsers(t *testing.T) {
	fixtures := createTestAdminService(t)
	ctx := context.Background()

	// A regular user already owns the email; the namespaces are shared.
	user := &entity.Account{Username: "bob", Email: "ann@x.com", PasswordHash: "hashed:pw"}
	require.NoError(t, fixtures.repo.CreateUser(ctx, user))

	err := fixtures.service.CreateAdmin(ctx, validCreateAdminInput())
	require.Error(t, err)
	assert.Equal(t, "ACCOUNT_ALREADY_EXISTS", appErrorCode(t, err))
}

func TestAdminService_GetAdmin(t *testing.T) {
	fixtures := createTestAdminService(t)
	record := fixtures.mustCreateAdmin(t, validCreateAdminInput())

	fetched, err := fixtures.service.GetAdmin(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, fetched.ID)
	assert.Equal(t, "Ann", fetched.FirstName)
	assert.Equal(t, "ann@x.com", fetched.Email)
}

func TestAdminService_GetAdmin_NotFound(t *testing.T) {
	fixtures := createTestAdminService(t)

	record, err := fixtures.service.GetAdmin(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Nil(t, record)
	assert.Equal(t, "ADMIN_NOT_FOUND", appErrorCode(t, err))
}

func TestAdminService_GetAdmin_RegularUserInvisible(t *testing.T) {
	fixtures := createTestAdminService(t)
	ctx := context.Background()

	user := &entity.Account{Username: "bob", Email: "bob@x.com", PasswordHash: "hashed:pw"}
	require.NoError(t, fixtures.repo.CreateUser(ctx, user))

	_, err := fixtures.service.GetAdmin(ctx, user.ID)
	require.Error(t, err)
	assert.Equal(t, "ADMIN_NOT_FOUND", appErrorCode(t, err))
}

func TestAdminService_ListAdmins_Empty(t *testing.T) {
	fixtures := createTestAdminService(t)

	admins, err := fixtures.service.ListAdmins(context.Background())
	require.NoError(t, err)
	assert.Empty(t, admins)
}

func TestAdminService_UpdateAdmin(t *testing.T) {
	fixtures := createTestAdminService(t)
	ctx := context.Background()
	record := fixtures.mustCreateAdmin(t, validCreateAdminInput())

	err := fixtures.service.UpdateAdmin(ctx, record.ID, &usecase.UpdateAdminInput{
		FirstName: "Anne",
		LastName:  "Smith",
		Username:  "anne",
		Email:     "anne@x.com",
		PhoneNo:   "555-0199",
		Address:   "2 Main St",
		ImagePath: "uploads/anne.png",
	})
	require.NoError(t, err)

	updated, err := fixtures.service.GetAdmin(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anne", updated.FirstName)
	assert.Equal(t, "anne@x.com", updated.Email)
	assert.Equal(t, "uploads/anne.png", updated.ImagePath)
	// Role survives every update.
	assert.Equal(t, entity.RoleAdmin, updated.Role)

	// Password hash is untouched by profile updates.
	stored, err := fixtures.repo.FindByEmail(ctx, "anne@x.com")
	require.NoError(t, err)
	assert.Equal(t, "hashed:pw1", stored.PasswordHash)
}

func TestAdminService_UpdateAdmin_PreservesImageWhenAbsent(t *testing.T) {
	fixtures := createTestAdminService(t)
	ctx := context.Background()
	record := fixtures.mustCreateAdmin(t, validCreateAdminInput())

	err := fixtures.service.UpdateAdmin(ctx, record.ID, &usecase.UpdateAdminInput{
		FirstName: "Anne",
		LastName:  "Smith",
		Username:  "ann",
		Email:     "ann@x.com",
		PhoneNo:   "555-0100",
		Address:   "1 Main St",
	})
	require.NoError(t, err)

	updated, err := fixtures.service.GetAdmin(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "uploads/ann.png", updated.ImagePath)
}

func TestAdminService_UpdateAdmin_NotFound(t *testing.T) {
	fixtures := createTestAdminService(t)

	err := fixtures.service.UpdateAdmin(context.Background(), uuid.New(), &usecase.UpdateAdminInput{})
	require.Error(t, err)
	assert.Equal(t, "ADMIN_NOT_FOUND", appErrorCode(t, err))
}

func TestAdminService_DeleteAdmin(t *testing.T) {
	fixtures := createTestAdminService(t)
	ctx := context.Background()
	record := fixtures.mustCreateAdmin(t, validCreateAdminInput())

	require.NoError(t, fixtures.service.DeleteAdmin(ctx, record.ID))

	// Deleted admins disappear from reads, updates and listings.
	_, err := fixtures.service.GetAdmin(ctx, record.ID)
	require.Error(t, err)
	assert.Equal(t, "ADMIN_NOT_FOUND", appErrorCode(t, err))

	err = fixtures.service.UpdateAdmin(ctx, record.ID, &usecase.UpdateAdminInput{FirstName: "X"})
	require.Error(t, err)
	assert.Equal(t, "ADMIN_NOT_FOUND", appErrorCode(t, err))

	admins, err := fixtures.service.ListAdmins(ctx)
	require.NoError(t, err)
	assert.Empty(t, admins)

	// The email stays blocked because the lookup still finds the record.
	err = fixtures.service.CreateAdmin(ctx, validCreateAdminInput())
	require.Error(t, err)
	assert.Equal(t, "ACCOUNT_ALREADY_EXISTS", appErrorCode(t, err))
}

func TestAdminService_DeleteAdmin_UnknownIDSucceeds(t *testing.T) {
	fixtures := createTestAdminService(t)
	ctx := context.Background()

	// No existence pre-check: a missing id still reports success.
	assert.NoError(t, fixtures.service.DeleteAdmin(ctx, uuid.New()))

	// Re-deleting is equally a no-op.
	record := fixtures.mustCreateAdmin(t, validCreateAdminInput())
	assert.NoError(t, fixtures.service.DeleteAdmin(ctx, record.ID))
	assert.NoError(t, fixtures.service.DeleteAdmin(ctx, record.ID))
}

func TestAdminService_ListUsers(t *testing.T) {
	fixtures := createTestAdminService(t)
	ctx := context.Background()

	user := &entity.Account{Username: "bob", Email: "bob@x.com", PasswordHash: "hashed:pw"}
	require.NoError(t, fixtures.repo.CreateUser(ctx, user))
	fixtures.mustCreateAdmin(t, validCreateAdminInput())

	listings, err := fixtures.service.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, user.ID, listings[0].ID)
	assert.Equal(t, "bob@x.com", listings[0].Email)
	assert.Equal(t, "bob", listings[0].Username)
}

func TestAdminService_ListUsers_ExcludesDeleted(t *testing.T) {
	fixtures := createTestAdminService(t)
	ctx := context.Background()

	user := &entity.Account{Username: "bob", Email: "bob@x.com", PasswordHash: "hashed:pw"}
	require.NoError(t, fixtures.repo.CreateUser(ctx, user))
	require.NoError(t, fixtures.repo.SoftDeleteByID(ctx, user.ID))

	listings, err := fixtures.service.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, listings)
}
