package ports

import (
	"context"

	"github.com/akkor/hotel-booking-api/internal/core/domain"
)

// CreateBookingInput carries the data needed to create a booking. The
// customer is never part of the input: it is always the authenticated caller.
type CreateBookingInput struct {
	StartDate string
	EndDate   string
	HotelID   string
}

// BookingService defines use-case operations for bookings.
type BookingService interface {
	Create(ctx context.Context, customerID string, input CreateBookingInput) (*domain.Booking, error)
	// ListByCustomer returns only bookings belonging to customerID.
	ListByCustomer(ctx context.Context, customerID string, page, limit int) ([]*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	// Delete is permitted to the owning customer only, regardless of role.
	Delete(ctx context.Context, callerID, id string) error
}
