package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpmiddleware "keystone/internal/delivery/http/middleware"
	"keystone/internal/delivery/http/validator"
	"keystone/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newHandlerTestServer builds an Echo instance with the same binder,
// validator and error handler the real server installs, so requests take
// the full transport path.
func newHandlerTestServer(t *testing.T, register func(e *echo.Echo)) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	register(e)

	return e
}

func newAccountTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	// Validation paths return before any repository or hasher access, so
	// those collaborators are never reached in these tests.
	accountHandler := NewAccountHandler(
		impl.NewAccountService(nil, nil, nil, newDiscardLogger()),
		newDiscardLogger(),
	)

	return newHandlerTestServer(t, func(e *echo.Echo) {
		e.POST("/auth/register", accountHandler.Register)
		e.POST("/auth/login", accountHandler.Login)
	})
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAccountHandler_Register_EmptyBody(t *testing.T) {
	e := newAccountTestServer(t)

	// An empty body must bind to zero fields and surface the missing-fields
	// error, not crash on an unallocated input.
	for _, body := range []string{"", "{}"} {
		rec := postJSON(e, "/auth/register", body)

		require.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.Contains(t, rec.Body.String(), "MISSING_FIELDS")
	}
}

func TestAccountHandler_Login_EmptyBody(t *testing.T) {
	e := newAccountTestServer(t)

	rec := postJSON(e, "/auth/login", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_FIELDS")
}

func TestAccountHandler_Register_MalformedEmail(t *testing.T) {
	e := newAccountTestServer(t)

	rec := postJSON(e, "/auth/register",
		`{"username":"alice","email":"not-an-email","password":"pw1","confirm_password":"pw1"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email")
}

func TestAccountHandler_Register_InvalidJSON(t *testing.T) {
	e := newAccountTestServer(t)

	rec := postJSON(e, "/auth/register", `{"username":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}
