package handler

import (
	"log/slog"
	"net/http"

	"keystone/internal/delivery/http/response"
	domainerrors "keystone/internal/domain/errors"
	"keystone/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for administrator management handlers.
// Routes using it sit behind the authentication and role middleware.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// adminID parses the :id path parameter. A malformed id cannot name any
// administrator, so it maps to the same not-found as a missing one.
func adminID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrAdminNotFound.WrapMessage("invalid admin id")
	}

	return id, nil
}

// CreateAdmin handles administrator creation.
func (h *AdminHandler) CreateAdmin(c echo.Context) error {
	var input usecase.CreateAdminInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid admin creation input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.CreateAdmin(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Admin created successfully")
}

// GetAdmin returns a single administrator profile.
func (h *AdminHandler) GetAdmin(c echo.Context) error {
	id, err := adminID(c)
	if err != nil {
		return err
	}

	record, err := h.uc.GetAdmin(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Admin fetched successfully")
}

// ListAdmins returns every active administrator.
func (h *AdminHandler) ListAdmins(c echo.Context) error {
	records, err := h.uc.ListAdmins(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "Admins fetched successfully")
}

// UpdateAdmin overwrites an administrator's profile fields.
func (h *AdminHandler) UpdateAdmin(c echo.Context) error {
	id, err := adminID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateAdminInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid admin update input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateAdmin(c.Request().Context(), id, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Admin updated successfully")
}

// DeleteAdmin soft-deletes an administrator account.
func (h *AdminHandler) DeleteAdmin(c echo.Context) error {
	id, err := adminID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAdmin(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Admin deleted successfully")
}

// ListUsers returns the minimal listing of active regular users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	listings, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "Users fetched successfully")
}
