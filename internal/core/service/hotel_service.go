package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/akkor/hotel-booking-api/internal/core/domain"
	"github.com/akkor/hotel-booking-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// HotelService implements listing management with ownership and role checks.
// Roles are always read from the users collection, never from token claims,
// so a role change takes effect immediately.
type HotelService struct {
	hotels ports.HotelRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewHotelService(hotels ports.HotelRepository, users ports.UserRepository, logger zerolog.Logger) *HotelService {
	return &HotelService{hotels: hotels, users: users, logger: logger}
}

// Create inserts a listing owned by the caller. The caller must exist and
// hold the ADMIN role; the owner field is never taken from client input.
func (s *HotelService) Create(ctx context.Context, callerID string, input ports.CreateHotelInput) (*domain.Hotel, error) {
	caller, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	hotel := &domain.Hotel{
		Name:        input.Name,
		Location:    input.Location,
		Description: input.Description,
		PictureList: input.PictureList,
		Owner:       callerID,
	}

	created, err := s.hotels.Create(ctx, hotel)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("hotel_id", created.ID).Str("owner", callerID).Msg("hotel created")
	return created, nil
}

func (s *HotelService) Get(ctx context.Context, id string) (*domain.Hotel, error) {
	return s.hotels.FindByID(ctx, id)
}

// Update applies a sparse patch. Permitted to the hotel's owner or to any
// admin. The existence check and the write are not atomic; a concurrent
// delete surfaces as ErrHotelNotFound from the repository.
func (s *HotelService) Update(ctx context.Context, callerID, id string, patch ports.HotelPatch) (*domain.Hotel, error) {
	hotel, err := s.hotels.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if hotel.Owner != callerID {
		caller, err := s.users.FindByID(ctx, callerID)
		if err != nil {
			return nil, err
		}
		if !caller.IsAdmin() {
			return nil, domain.ErrForbidden
		}
	}

	return s.hotels.Update(ctx, id, patch)
}

// Delete removes a listing. Only the owner may delete; the admin role alone
// is not sufficient, unlike Update.
func (s *HotelService) Delete(ctx context.Context, callerID, id string) error {
	hotel, err := s.hotels.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if hotel.Owner != callerID {
		return domain.ErrForbidden
	}

	return s.hotels.Delete(ctx, id)
}

// SearchByName matches hotel names case-insensitively on a substring.
func (s *HotelService) SearchByName(ctx context.Context, name string, page, limit int) ([]*domain.Hotel, error) {
	page, limit = normalizePage(page, limit)
	return s.hotels.SearchByName(ctx, name, page, limit)
}

// normalizePage clamps pagination parameters to sane bounds.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}
