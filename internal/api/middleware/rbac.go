package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/akkor/hotel-booking-api/internal/core/ports"
)

// RequireRole enforces role-based access using the caller's stored role, not
// a token claim, so role changes take effect on the next request. Must run
// after Auth. Rejections answer 401, never 403; clients depend on it.
func RequireRole(users ports.UserRepository, allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get(ContextKeyUserID).(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
			}
			if _, ok := allowed[user.Role]; !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "insufficient privilege")
			}
			return next(c)
		}
	}
}
