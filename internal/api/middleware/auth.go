package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/careerbridge/careerbridge-api/internal/core/domain"
	"github.com/careerbridge/careerbridge-api/internal/core/ports"
)

// ClaimsKey is the echo context key under which verified claims are stored.
const ClaimsKey = "auth_claims"

// RequireAuth verifies the bearer token and injects the decoded claims into
// the request context. A missing Authorization header is the only 401; a
// malformed, forged, expired, or revoked token is a 403, so clients can tell
// "log in" apart from "log in again".
func RequireAuth(tokens ports.TokenService, denylist ports.TokenDenylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusForbidden, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusForbidden, "token expired")
				}
				return echo.NewHTTPError(http.StatusForbidden, "invalid token")
			}

			if denylist != nil {
				revoked, err := denylist.IsRevoked(c.Request().Context(), claims.TokenID)
				if err != nil {
					return err
				}
				if revoked {
					return echo.NewHTTPError(http.StatusForbidden, "token revoked")
				}
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// ContextClaims returns the claims stored by RequireAuth, or nil when the
// request reached the handler without passing through it.
func ContextClaims(c echo.Context) *ports.Claims {
	claims, _ := c.Get(ClaimsKey).(*ports.Claims)
	return claims
}
