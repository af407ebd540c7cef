package dto

import (
	"time"

	"github.com/stpnv0/VillaBooker/internal/domain"
)

type CatalogResponse struct {
	Rooms        []domain.Room       `json:"rooms"`
	Rules        domain.PricingRules `json:"rules"`
	CheckInTime  string              `json:"check_in_time"`
	CheckOutTime string              `json:"check_out_time"`
}

type QuoteResponse struct {
	Nights         int                 `json:"nights"`
	BaseTotal      int64               `json:"base_total"`
	GuestSurcharge int64               `json:"guest_surcharge"`
	OptionTotal    int64               `json:"option_total"`
	TotalAmount    int64               `json:"total_amount"`
	Breakdown      []domain.NightPrice `json:"breakdown"`
}

type HoldResponse struct {
	BookingID  string `json:"booking_id"`
	LookupCode string `json:"lookup_code"`
	AmountDue  int64  `json:"amount_due"`
	ExpiresAt  string `json:"expires_at"`
}

// CheckoutResponse feeds the payment page. It carries no guest contact data.
type CheckoutResponse struct {
	BookingID string `json:"booking_id"`
	RoomID    string `json:"room_id"`
	RoomName  string `json:"room_name"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Nights    int    `json:"nights"`
	Guests    int    `json:"guests"`
	AmountDue int64  `json:"amount_due"`
	Status    string `json:"status"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

type VerifyPaymentResponse struct {
	Confirmed bool   `json:"confirmed"`
	Reason    string `json:"reason,omitempty"`
	Status    string `json:"status,omitempty"`
}

type LookupResponse struct {
	LookupCode    string   `json:"lookup_code"`
	GuestName     string   `json:"guest_name"`
	RoomName      string   `json:"room_name"`
	CheckIn       string   `json:"check_in"`
	CheckOut      string   `json:"check_out"`
	Nights        int      `json:"nights"`
	Guests        int      `json:"guests"`
	Options       []string `json:"options"`
	TotalAmount   int64    `json:"total_amount"`
	Status        string   `json:"status"`
	PaymentStatus string   `json:"payment_status,omitempty"`
	CancelReason  string   `json:"cancel_reason,omitempty"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		Nights:         q.Nights,
		BaseTotal:      q.BaseTotal,
		GuestSurcharge: q.GuestSurcharge,
		OptionTotal:    q.OptionTotal,
		TotalAmount:    q.TotalAmount,
		Breakdown:      q.Breakdown,
	}
}

func ToHoldResponse(r *domain.HoldReceipt) HoldResponse {
	return HoldResponse{
		BookingID:  r.BookingID,
		LookupCode: r.LookupCode,
		AmountDue:  r.AmountDue,
		ExpiresAt:  r.ExpiresAt.Format(time.RFC3339),
	}
}

func ToCheckoutResponse(co *domain.Checkout) CheckoutResponse {
	b := co.Booking
	resp := CheckoutResponse{
		BookingID: b.ID,
		RoomID:    b.RoomID,
		RoomName:  co.RoomName,
		CheckIn:   b.CheckIn.Format(domain.DateLayout),
		CheckOut:  b.CheckOut.Format(domain.DateLayout),
		Nights:    b.Nights,
		Guests:    b.Guests,
		AmountDue: b.TotalAmount,
		Status:    string(b.Status),
	}
	if b.ExpiresAt != nil {
		resp.ExpiresAt = b.ExpiresAt.Format(time.RFC3339)
	}
	return resp
}

func ToVerifyPaymentResponse(r *domain.Reconciliation) VerifyPaymentResponse {
	return VerifyPaymentResponse{
		Confirmed: r.Confirmed,
		Reason:    r.Reason,
		Status:    string(r.Status),
	}
}

func ToLookupResponse(s *domain.BookingSummary) LookupResponse {
	b := s.Booking
	return LookupResponse{
		LookupCode:    b.LookupCode,
		GuestName:     b.GuestName,
		RoomName:      s.RoomName,
		CheckIn:       b.CheckIn.Format(domain.DateLayout),
		CheckOut:      b.CheckOut.Format(domain.DateLayout),
		Nights:        b.Nights,
		Guests:        b.Guests,
		Options:       b.Options,
		TotalAmount:   b.TotalAmount,
		Status:        string(b.Status),
		PaymentStatus: string(s.PaymentStatus),
		CancelReason:  string(b.CancelReason),
	}
}
