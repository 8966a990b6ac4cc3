package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerbridge/careerbridge-api/internal/core/domain"
)

// RequireAdmin rejects any request whose verified claims do not carry the
// admin role. It must be registered after RequireAuth; a request arriving
// without claims is treated as unauthenticated, not merely unauthorized.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ContextClaims(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if claims.Role != domain.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}
