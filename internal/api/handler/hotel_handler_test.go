package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/akkor/hotel-booking-api/internal/api/middleware"
	"github.com/akkor/hotel-booking-api/internal/core/domain"
	"github.com/akkor/hotel-booking-api/internal/core/ports"
)

type stubHotelService struct {
	createFn func(ctx context.Context, callerID string, input ports.CreateHotelInput) (*domain.Hotel, error)
	getFn    func(ctx context.Context, id string) (*domain.Hotel, error)
	updateFn func(ctx context.Context, callerID, id string, patch ports.HotelPatch) (*domain.Hotel, error)
	deleteFn func(ctx context.Context, callerID, id string) error
	searchFn func(ctx context.Context, name string, page, limit int) ([]*domain.Hotel, error)
}

func (s *stubHotelService) Create(ctx context.Context, callerID string, input ports.CreateHotelInput) (*domain.Hotel, error) {
	return s.createFn(ctx, callerID, input)
}

func (s *stubHotelService) Get(ctx context.Context, id string) (*domain.Hotel, error) {
	return s.getFn(ctx, id)
}

func (s *stubHotelService) Update(ctx context.Context, callerID, id string, patch ports.HotelPatch) (*domain.Hotel, error) {
	return s.updateFn(ctx, callerID, id, patch)
}

func (s *stubHotelService) Delete(ctx context.Context, callerID, id string) error {
	return s.deleteFn(ctx, callerID, id)
}

func (s *stubHotelService) SearchByName(ctx context.Context, name string, page, limit int) ([]*domain.Hotel, error) {
	return s.searchFn(ctx, name, page, limit)
}

func TestHotelHandler_Create_OwnerIsCaller(t *testing.T) {
	e := newTestEcho()
	stub := &stubHotelService{
		createFn: func(ctx context.Context, callerID string, input ports.CreateHotelInput) (*domain.Hotel, error) {
			if callerID != "admin1" {
				t.Fatalf("unexpected caller: %s", callerID)
			}
			return &domain.Hotel{ID: "h1", Name: input.Name, Location: input.Location, Description: input.Description, Owner: callerID}, nil
		},
	}
	h := NewHotelHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/hotels/",
		`{"name":"SupHotel","location":"Paris","description":"lorem ipsum","picture_list":["https://example.com/a.jpg"]}`)
	c.Set(middleware.ContextKeyUserID, "admin1")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["owner"] != "admin1" {
		t.Fatalf("owner not set from caller: %+v", resp)
	}
}

func TestHotelHandler_Create_MissingName(t *testing.T) {
	e := newTestEcho()
	stub := &stubHotelService{
		createFn: func(ctx context.Context, callerID string, input ports.CreateHotelInput) (*domain.Hotel, error) {
			t.Fatalf("service must not be called on invalid payload")
			return nil, nil
		},
	}
	h := NewHotelHandler(stub)

	c, _ := jsonRequest(e, http.MethodPost, "/hotels/", `{"location":"Paris","description":"d"}`)
	c.Set(middleware.ContextKeyUserID, "admin1")

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestHotelHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubHotelService{
		getFn: func(ctx context.Context, id string) (*domain.Hotel, error) {
			return nil, domain.ErrHotelNotFound
		},
	}
	h := NewHotelHandler(stub)

	c, _ := jsonRequest(e, http.MethodGet, "/hotels/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrHotelNotFound) {
		t.Fatalf("expected ErrHotelNotFound to propagate, got %v", err)
	}
}

func TestHotelHandler_Delete_NoContent(t *testing.T) {
	e := newTestEcho()
	stub := &stubHotelService{
		deleteFn: func(ctx context.Context, callerID, id string) error {
			if callerID != "admin1" || id != "h1" {
				t.Fatalf("unexpected args: %s %s", callerID, id)
			}
			return nil
		},
	}
	h := NewHotelHandler(stub)

	c, rec := jsonRequest(e, http.MethodDelete, "/hotels/h1", "")
	c.SetParamNames("id")
	c.SetParamValues("h1")
	c.Set(middleware.ContextKeyUserID, "admin1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestHotelHandler_Search(t *testing.T) {
	e := newTestEcho()
	stub := &stubHotelService{
		searchFn: func(ctx context.Context, name string, page, limit int) ([]*domain.Hotel, error) {
			if name != "hot" {
				t.Fatalf("unexpected needle: %s", name)
			}
			return []*domain.Hotel{{ID: "h1", Name: "SupHotel"}, {ID: "h2", Name: "The Grand Hotel"}}, nil
		},
	}
	h := NewHotelHandler(stub)

	c, rec := jsonRequest(e, http.MethodGet, "/search?name=hot", "")

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 results, got %d", len(resp))
	}
}

func TestHotelHandler_Search_EmptyResultIsArray(t *testing.T) {
	e := newTestEcho()
	stub := &stubHotelService{
		searchFn: func(ctx context.Context, name string, page, limit int) ([]*domain.Hotel, error) {
			return nil, nil
		},
	}
	h := NewHotelHandler(stub)

	c, rec := jsonRequest(e, http.MethodGet, "/search?name=zzz", "")

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", got)
	}
}

func TestHotelHandler_Search_MissingName(t *testing.T) {
	e := newTestEcho()
	h := NewHotelHandler(&stubHotelService{})

	c, _ := jsonRequest(e, http.MethodGet, "/search", "")

	err := h.Search(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}
