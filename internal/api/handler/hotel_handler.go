package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/akkor/hotel-booking-api/internal/api/metrics"
	"github.com/akkor/hotel-booking-api/internal/core/domain"
	"github.com/akkor/hotel-booking-api/internal/core/ports"
)

// HotelHandler handles HTTP requests for hotel listings.
type HotelHandler struct {
	service ports.HotelService
}

func NewHotelHandler(service ports.HotelService) *HotelHandler {
	return &HotelHandler{service: service}
}

// Create handles POST /hotels/.
//
// @Summary      Create a hotel listing
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createHotelRequest  true  "Hotel details"
// @Success      201   {object}  domain.Hotel
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /hotels/ [post]
func (h *HotelHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createHotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	hotel, err := h.service.Create(c.Request().Context(), userID, ports.CreateHotelInput{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		PictureList: req.PictureList,
	})
	if err != nil {
		return err
	}

	metrics.HotelsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, hotel)
}

// Get handles GET /hotels/:id. No auth required.
//
// @Summary      Get a hotel by id
// @Tags         hotels
// @Produce      json
// @Param        id   path      string  true  "Hotel id"
// @Success      200  {object}  domain.Hotel
// @Failure      404  {object}  errorResponse
// @Router       /hotels/{id} [get]
func (h *HotelHandler) Get(c echo.Context) error {
	hotel, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hotel)
}

// Update handles PATCH /hotels/:id. Allowed for the owner or any admin.
//
// @Summary      Update a hotel listing
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Hotel id"
// @Param        body  body      updateHotelRequest  true  "Fields to change"
// @Success      200   {object}  domain.Hotel
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /hotels/{id} [patch]
func (h *HotelHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateHotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	hotel, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), ports.HotelPatch{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		PictureList: req.PictureList,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hotel)
}

// Delete handles DELETE /hotels/:id. Only the owner may delete.
//
// @Summary      Delete a hotel listing
// @Tags         hotels
// @Security     BearerAuth
// @Param        id  path  string  true  "Hotel id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /hotels/{id} [delete]
func (h *HotelHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Search handles GET /search?name=, a public case-insensitive substring
// match on hotel names.
//
// @Summary      Search hotels by name
// @Tags         hotels
// @Produce      json
// @Param        name   query  string  true   "Name substring"
// @Param        page   query  int     false  "Page (1-based)"
// @Param        limit  query  int     false  "Page size (max 100)"
// @Success      200  {array}  domain.Hotel
// @Router       /search [get]
func (h *HotelHandler) Search(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "name is required")
	}

	page, limit := pageParams(c)
	hotels, err := h.service.SearchByName(c.Request().Context(), name, page, limit)
	if err != nil {
		return err
	}

	metrics.HotelSearchesTotal.Inc()
	if hotels == nil {
		hotels = []*domain.Hotel{}
	}
	return c.JSON(http.StatusOK, hotels)
}

// pageParams parses page/limit query parameters; bounds are enforced by the
// service layer.
func pageParams(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}
