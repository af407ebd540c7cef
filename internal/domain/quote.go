package domain

import "time"

// MaxStayNights bounds a single booking; longer stays are arranged offline.
const MaxStayNights = 30

type QuoteInput struct {
	RoomID   string
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Options  []string
}

type NightPrice struct {
	Date      string `json:"date"`
	Price     int64  `json:"price"`
	IsWeekend bool   `json:"is_weekend"`
}

// Quote is the itemised price of a stay. Stored verbatim on the booking as its contract.
type Quote struct {
	Nights         int          `json:"nights"`
	BaseTotal      int64        `json:"base_total"`
	GuestSurcharge int64        `json:"guest_surcharge"`
	OptionTotal    int64        `json:"option_total"`
	TotalAmount    int64        `json:"total_amount"`
	Breakdown      []NightPrice `json:"breakdown"`
}
