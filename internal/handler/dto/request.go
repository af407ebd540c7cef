package dto

type QuoteRequest struct {
	RoomID   string   `json:"room_id"   binding:"required"`
	CheckIn  string   `json:"check_in"  binding:"required"`
	CheckOut string   `json:"check_out" binding:"required"`
	Guests   int      `json:"guests"    binding:"required,min=1"`
	Options  []string `json:"options"`
}

type HoldRequest struct {
	RoomID       string   `json:"room_id"       binding:"required"`
	CheckIn      string   `json:"check_in"      binding:"required"`
	CheckOut     string   `json:"check_out"     binding:"required"`
	Guests       int      `json:"guests"        binding:"required,min=1"`
	GuestName    string   `json:"guest_name"    binding:"required"`
	GuestContact string   `json:"guest_contact" binding:"required"`
	Options      []string `json:"options"`
}

type VerifyPaymentRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
}

type LookupRequest struct {
	LookupCode string `json:"lookup_code" binding:"required"`
	Contact    string `json:"contact"     binding:"required"`
}
