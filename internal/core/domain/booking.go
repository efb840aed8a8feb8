package domain

// Booking ties a customer to a hotel over a date range. Dates are stored as
// ISO "2006-01-02" strings; their ordering is deliberately not validated and
// no availability check is performed.
type Booking struct {
	ID        string `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	HotelID   string `json:"hotel_id"`
	Customer  string `json:"customer"`
}
