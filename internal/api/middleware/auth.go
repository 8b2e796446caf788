package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/slalom/capabilities-system/internal/core/domain"
	"github.com/slalom/capabilities-system/internal/core/ports"
)

// userContextKey is where Auth stores the resolved user for handlers
// and the RBAC middleware.
const userContextKey = "user"

// Auth validates the bearer token, resolves its subject against the
// credential store via the auth service, and injects the full user into
// the request context. Credentials are mandatory: a missing header is a
// 401, same as an invalid or expired token.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := auth.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// UserFromContext returns the user injected by Auth, or nil when the
// middleware did not run.
func UserFromContext(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}
