package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"loanportal-backend/internal/domain/identity"
	"loanportal-backend/internal/domain/user"
)

// Context keys set by WithAuth for downstream handlers.
const (
	CtxUserID = "auth_user_id"
	CtxRole   = "auth_role"
)

// WithAuth verifies the bearer token through the identity capability and
// stashes the caller's id and role on the request context.
func WithAuth(v identity.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Request().Header.Get(echo.HeaderAuthorization)
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}

			claims, err := v.Verify(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRole, claims.Role)
			return next(c)
		}
	}
}

// RequireAdmin gates admin routes on the role claim. Runs after WithAuth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if role != string(user.RoleAdmin) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin access required"})
			}
			return next(c)
		}
	}
}
