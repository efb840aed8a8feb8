package ports

import (
	"context"

	"github.com/akkor/hotel-booking-api/internal/core/domain"
)

// HotelPatch carries a sparse update: nil fields are left untouched.
type HotelPatch struct {
	Name        *string
	Location    *string
	Description *string
	PictureList *[]string
}

// HotelRepository defines persistence operations for hotel listings.
type HotelRepository interface {
	Create(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error)
	FindByID(ctx context.Context, id string) (*domain.Hotel, error)
	// Update applies the non-nil fields of patch. The updated document is
	// re-read afterwards; a concurrent delete surfaces as ErrHotelNotFound.
	Update(ctx context.Context, id string, patch HotelPatch) (*domain.Hotel, error)
	Delete(ctx context.Context, id string) error
	// SearchByName performs a case-insensitive substring match on name.
	SearchByName(ctx context.Context, name string, page, limit int) ([]*domain.Hotel, error)
}
