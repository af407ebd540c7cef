package domain

import "time"

const (
	EventBookingHeld      = "booking.held"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
)

type BookingEvent struct {
	Type       string        `json:"type"`
	BookingID  string        `json:"booking_id"`
	RoomID     string        `json:"room_id"`
	CheckIn    string        `json:"check_in"`
	CheckOut   string        `json:"check_out"`
	Status     BookingStatus `json:"status"`
	Amount     int64         `json:"amount"`
	Reason     string        `json:"reason,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}

func NewBookingEvent(eventType string, b *Booking, at time.Time) BookingEvent {
	return BookingEvent{
		Type:       eventType,
		BookingID:  b.ID,
		RoomID:     b.RoomID,
		CheckIn:    b.CheckIn.Format(DateLayout),
		CheckOut:   b.CheckOut.Format(DateLayout),
		Status:     b.Status,
		Amount:     b.TotalAmount,
		Reason:     string(b.CancelReason),
		OccurredAt: at,
	}
}
