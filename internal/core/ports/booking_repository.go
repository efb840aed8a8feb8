package ports

import (
	"context"

	"github.com/akkor/hotel-booking-api/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	FindByCustomer(ctx context.Context, customerID string, page, limit int) ([]*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}
