package domain

import (
	"slices"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// ActiveStatuses hold inventory: their date ranges may not overlap per room.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

type CancelReason string

const (
	CancelReasonExpired        CancelReason = "EXPIRED"
	CancelReasonAmountMismatch CancelReason = "AMOUNT_MISMATCH"
	CancelReasonGuestRequested CancelReason = "GUEST_REQUESTED"
	CancelReasonSystemError    CancelReason = "SYSTEM_ERROR"
)

const DateLayout = "2006-01-02"

type Booking struct {
	ID               string        `json:"id"`
	RoomID           string        `json:"room_id"`
	CheckIn          time.Time     `json:"check_in"`
	CheckOut         time.Time     `json:"check_out"`
	Nights           int           `json:"nights"`
	Guests           int           `json:"guests"`
	Status           BookingStatus `json:"status"`
	TotalAmount      int64         `json:"total_amount"`
	Quote            Quote         `json:"quote"`
	Options          []string      `json:"options"`
	LookupCode       string        `json:"lookup_code"`
	GuestName        string        `json:"guest_name"`
	GuestContactNorm string        `json:"-"`
	GuestContactHash string        `json:"-"`
	ExpiresAt        *time.Time    `json:"expires_at,omitempty"`
	CancelReason     CancelReason  `json:"cancel_reason,omitempty"`
	CancelNote       string        `json:"cancel_note,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

func (b *Booking) IsActive() bool {
	return slices.Contains(ActiveStatuses, b.Status)
}

// Overlaps reports whether the half-open stays [CheckIn, CheckOut) intersect.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckIn.Before(checkOut) && checkIn.Before(b.CheckOut)
}

func (b *Booking) HoldExpired(now time.Time) bool {
	return b.Status == BookingStatusPending && b.ExpiresAt != nil && b.ExpiresAt.Before(now)
}

// TransitionMeta is persisted only when a booking moves to CANCELLED.
type TransitionMeta struct {
	Reason CancelReason
	Note   string
}

type HoldInput struct {
	RoomID       string    `validate:"required"`
	CheckIn      time.Time `validate:"required"`
	CheckOut     time.Time `validate:"required"`
	Guests       int       `validate:"min=1"`
	GuestName    string    `validate:"required,min=2,max=50"`
	GuestContact string    `validate:"required,kr_mobile"`
	Options      []string  `validate:"max=10,dive,required"`
}

type HoldReceipt struct {
	BookingID  string
	LookupCode string
	AmountDue  int64
	ExpiresAt  time.Time
}

// BookingSummary is what a guest sees after a successful lookup.
type BookingSummary struct {
	Booking       Booking
	RoomName      string
	PaymentStatus PaymentStatus
}

type Checkout struct {
	Booking  Booking
	RoomName string
}

// DateOnly drops the time of day and pins the date to UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
