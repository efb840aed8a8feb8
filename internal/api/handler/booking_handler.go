package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/akkor/hotel-booking-api/internal/api/metrics"
	"github.com/akkor/hotel-booking-api/internal/core/domain"
	"github.com/akkor/hotel-booking-api/internal/core/ports"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /bookings/. The customer is always the caller.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /bookings/ [post]
func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	booking, err := h.service.Create(c.Request().Context(), userID, ports.CreateBookingInput{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		HotelID:   req.HotelID,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, booking)
}

// List handles GET /bookings/ and returns only the caller's own bookings.
//
// @Summary      List own bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int  false  "Page (1-based)"
// @Param        limit  query  int  false  "Page size (max 100)"
// @Success      200  {array}  domain.Booking
// @Failure      401  {object}  errorResponse
// @Router       /bookings/ [get]
func (h *BookingHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	page, limit := pageParams(c)
	bookings, err := h.service.ListByCustomer(c.Request().Context(), userID, page, limit)
	if err != nil {
		return err
	}

	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	return c.JSON(http.StatusOK, bookings)
}

// Get handles GET /bookings/:id. Reads by id are public; only creation,
// listing and cancellation require auth.
//
// @Summary      Get a booking by id
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  domain.Booking
// @Failure      404  {object}  errorResponse
// @Router       /bookings/{id} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	booking, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// Delete handles DELETE /bookings/:id. Only the owning customer may cancel.
//
// @Summary      Delete a booking
// @Tags         bookings
// @Security     BearerAuth
// @Param        id  path  string  true  "Booking id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /bookings/{id} [delete]
func (h *BookingHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
