package middleware

import (
	"strings"

	"keystone/internal/delivery/http/response"
	"keystone/internal/domain/entity"
	"keystone/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyAccountID = "accountID"
	ContextKeyRole      = "role"
)

// AuthMiddleware provides middleware for session token authentication and
// role-based authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and sets the account identity and
// role on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		accountID, err := claims.AccountID()
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account id in token")
		}

		c.Set(ContextKeyAccountID, accountID)
		c.Set(ContextKeyRole, entity.Role(claims.Role))

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the authenticated account
// holds at least the given role. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(minimum entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok {
				return response.Forbidden(c, "PERMISSION_DENIED", "Permission denied: role information missing")
			}

			if !role.AtLeast(minimum) {
				return response.Forbidden(c, "PERMISSION_DENIED", "Permission denied: require '"+minimum.String()+"' role")
			}

			return next(c)
		}
	}
}
