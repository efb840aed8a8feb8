package ports

import (
	"context"

	"github.com/akkor/hotel-booking-api/internal/core/domain"
)

// CreateHotelInput carries the data needed to create a listing. The owner is
// never part of the input: it is always the authenticated caller.
type CreateHotelInput struct {
	Name        string
	Location    string
	Description string
	PictureList []string
}

// HotelService defines use-case operations for hotel listings.
type HotelService interface {
	// Create requires the caller's stored role to be ADMIN.
	Create(ctx context.Context, callerID string, input CreateHotelInput) (*domain.Hotel, error)
	Get(ctx context.Context, id string) (*domain.Hotel, error)
	// Update is permitted to the hotel's owner or any admin.
	Update(ctx context.Context, callerID, id string, patch HotelPatch) (*domain.Hotel, error)
	// Delete is permitted to the owner only; the admin role alone is not
	// sufficient.
	Delete(ctx context.Context, callerID, id string) error
	SearchByName(ctx context.Context, name string, page, limit int) ([]*domain.Hotel, error)
}
