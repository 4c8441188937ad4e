package booking

// ==================== REQUEST STRUCTS ====================

// BookingRequest is the table reservation payload posted by the website.
// Date is a calendar date (YYYY-MM-DD) and Time a 24-hour HH:MM clock.
type BookingRequest struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	Date            string `json:"date" validate:"required"`
	Time            string `json:"time" validate:"required"`
	Guests          int    `json:"guests" validate:"required"`
	SpecialRequests string `json:"specialRequests"`
}

// ==================== RESPONSE STRUCTS ====================

// BookingRecord is the accepted, immutable reservation: the request enriched
// with its generated id and creation timestamp.
type BookingRecord struct {
	BookingRequest
	BookingID string `json:"bookingId"`
	CreatedAt string `json:"createdAt"`
}
