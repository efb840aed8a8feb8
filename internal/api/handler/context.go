package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/akkor/hotel-booking-api/internal/api/middleware"
)

// ctxUserID extracts the authenticated user id injected by the Auth
// middleware. Its presence proves the middleware ran; a missing id on a
// protected route is a wiring bug surfaced as 401, not 500.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.ContextKeyUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
