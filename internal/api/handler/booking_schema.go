package handler

// --- Request / Response types ---

// createBookingRequest deliberately does not require start_date < end_date
// and does not check that hotel_id exists.
type createBookingRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
	HotelID   string `json:"hotel_id"   validate:"required"`
}
