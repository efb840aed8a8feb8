package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/akkor/hotel-booking-api/internal/core/domain"
	"github.com/akkor/hotel-booking-api/internal/core/ports"
)

// BookingService implements booking creation, listing, and deletion scoped
// to the authenticated customer. Date ordering and hotel availability are
// deliberately not checked.
type BookingService struct {
	repo   ports.BookingRepository
	logger zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, logger: logger}
}

// Create inserts a booking with the customer forced to the caller identity.
func (s *BookingService) Create(ctx context.Context, customerID string, input ports.CreateBookingInput) (*domain.Booking, error) {
	booking := &domain.Booking{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		HotelID:   input.HotelID,
		Customer:  customerID,
	}

	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("booking_id", created.ID).Str("customer", customerID).Msg("booking created")
	return created, nil
}

// ListByCustomer returns only the caller's own bookings.
func (s *BookingService) ListByCustomer(ctx context.Context, customerID string, page, limit int) ([]*domain.Booking, error) {
	page, limit = normalizePage(page, limit)
	return s.repo.FindByCustomer(ctx, customerID, page, limit)
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.repo.FindByID(ctx, id)
}

// Delete removes a booking. Only the owning customer may delete, regardless
// of role. Repeating a delete yields ErrBookingNotFound.
func (s *BookingService) Delete(ctx context.Context, callerID, id string) error {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if booking.Customer != callerID {
		return domain.ErrForbidden
	}

	return s.repo.Delete(ctx, id)
}
